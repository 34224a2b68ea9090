package explorer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/activerest/cli/pkg/active"
	"github.com/ktr0731/go-fuzzyfinder"
)

// pickRecord fetches the collection and has the user fuzzy-pick one
// record, with the full field object in the preview window.
func pickRecord(declared *active.Resource, header string) (*active.Record, error) {
	records, err := declared.All()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("'%s' has no records to pick from", declared.Name)
	}
	index, err := fuzzyfinder.Find(
		records,
		func(i int) string { return recordLabel(records[i]) },
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			body, err := json.MarshalIndent(records[i].Fields, "", "  ")
			if err != nil {
				return ""
			}
			return string(body)
		}),
		fuzzyfinder.WithHeader(header),
	)
	if err != nil {
		return nil, err
	}
	return records[index], nil
}

// recordLabel is the one-line summary shown in the picker: the identifier
// plus the first human-looking string field.
func recordLabel(record *active.Record) string {
	id := record.Fields[record.Resource().UID]
	for _, key := range []string{"name", "title", "username", "email"} {
		if value, ok := record.Fields[key].(string); ok && value != "" {
			return fmt.Sprintf("%v  %s", id, value)
		}
	}
	return fmt.Sprintf("%v", id)
}

func showRecord(pager string, record *active.Record) error {
	return show(pager, record.Fields)
}

func showRecords(pager string, records []*active.Record) error {
	fields := make([]active.Fields, 0, len(records))
	for _, record := range records {
		fields = append(fields, record.Fields)
	}
	return show(pager, fields)
}

// show renders a payload as indented JSON, through the pager when one is
// configured.
func show(pager string, payload any) error {
	output, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	output = append(output, '\n')
	if pager != "" {
		cmd := exec.Command(pager)
		cmd.Stdin = bytes.NewReader(output)
		cmd.Stdout = os.Stdout
		return cmd.Run()
	}
	_, err = os.Stdout.Write(output)
	return err
}

func stringSliceContains(haystack []string, needle string) bool {
	for _, key := range haystack {
		if key == needle {
			return true
		}
	}
	return false
}
