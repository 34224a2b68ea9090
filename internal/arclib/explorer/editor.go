package explorer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/exec"
	"reflect"

	"github.com/activerest/cli/pkg/active"
	"github.com/google/shlex"
)

// invokeEditor round-trips a payload through the user's editor: write it
// to a temp file, run the editor on it, read the result back.
func invokeEditor(input []byte, editor string) ([]byte, error) {
	if editor == "" {
		return nil, errors.New(
			"no editor specified, use the --editor flag or set the EDITOR " +
				"environment variable",
		)
	}
	tempFile, err := os.CreateTemp("", "*.json")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempFile.Name())
	_, err = tempFile.Write(input)
	if err != nil {
		return nil, err
	}
	editorArgs, err := shlex.Split(editor)
	if err != nil {
		return nil, err
	}
	editorArgs = append(editorArgs, tempFile.Name())
	cmd := exec.Command(editorArgs[0], editorArgs[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	err = cmd.Run()
	if err != nil {
		return nil, err
	}
	_, err = tempFile.Seek(0, 0)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(tempFile)
}

func decodeEditedFields(body []byte) (active.Fields, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var fields active.Fields
	err := decoder.Decode(&fields)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// composeFields opens the editor on a template object and returns whatever
// the user saved. Used for create, where every returned field is sent.
func composeFields(editor string, template active.Fields) (active.Fields, error) {
	if template == nil {
		template = active.Fields{}
	}
	body, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return nil, err
	}
	body, err = invokeEditor(body, editor)
	if err != nil {
		return nil, err
	}
	return decodeEditedFields(body)
}

// editFields opens the editor on a record's fields, identifier excluded,
// and returns only the fields the user actually changed. An empty result
// means nothing to update.
func editFields(editor string, record *active.Record) (active.Fields, error) {
	pre := make(active.Fields, len(record.Fields))
	for key, value := range record.Fields {
		if key == record.Resource().UID {
			continue
		}
		pre[key] = value
	}
	body, err := json.MarshalIndent(pre, "", "  ")
	if err != nil {
		return nil, err
	}
	body, err = invokeEditor(body, editor)
	if err != nil {
		return nil, err
	}
	post, err := decodeEditedFields(body)
	if err != nil {
		return nil, err
	}
	for key, postValue := range post {
		preValue, exists := pre[key]
		if exists && reflect.DeepEqual(preValue, postValue) {
			delete(post, key)
		}
	}
	return post, nil
}
