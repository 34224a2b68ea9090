package arclib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/internal/demoapi"
	"github.com/activerest/cli/pkg/active"
)

const manifestTemplate = `[api]
url = %s

[resource:album]
belongs_to = user
has_many = photo

[resource:comment]
belongs_to = post

[resource:photo]
belongs_to = album

[resource:post]
belongs_to = user
has_many = comment

[resource:profile]

[resource:todo]
belongs_to = user

[resource:user]
has_one = profile
has_many = post album todo
`

/*
beforeCommandTest moves into a scratch project pointed at a fresh demo
API server and declares every manifest resource against it. The teardown
restores the working directory and empties the process registry.
*/
func beforeCommandTest(t *testing.T) (
	*config.Config, map[string]*active.Resource, func(),
) {
	curDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tempDir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatal(err)
	}
	err = os.Chdir(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARC_ROOT_CONFIG", filepath.Join(tempDir, "activerestrc"))

	server := httptest.NewServer(demoapi.NewHandler().Routes())

	err = os.Mkdir(".arc", 0755)
	if err != nil {
		t.Fatal(err)
	}
	manifest := fmt.Sprintf(manifestTemplate, server.URL)
	err = os.WriteFile(
		filepath.Join(".arc", "config"), []byte(manifest), 0755,
	)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	baseURL, token, err := GetHostAndToken(&cfg, "", "")
	if err != nil {
		t.Fatal(err)
	}
	session, err := GetSession(token, "")
	if err != nil {
		t.Fatal(err)
	}
	resources, err := DeclareResources(&cfg, baseURL, session)
	if err != nil {
		t.Fatal(err)
	}

	return &cfg, resources, func() {
		server.Close()
		active.ResetRegistry()
		_ = os.Chdir(curDir)
		os.RemoveAll(tempDir)
	}
}

// captureOutput points rendered records at a buffer for the duration of
// the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	var buffer bytes.Buffer
	previous := commandOutput
	commandOutput = &buffer
	t.Cleanup(func() { commandOutput = previous })
	return &buffer
}

func decodeRecord(t *testing.T, buffer *bytes.Buffer) map[string]any {
	var record map[string]any
	err := json.Unmarshal(buffer.Bytes(), &record)
	if err != nil {
		t.Fatalf("could not decode rendered record: %s", err)
	}
	return record
}

func decodeRecords(t *testing.T, buffer *bytes.Buffer) []map[string]any {
	var records []map[string]any
	err := json.Unmarshal(buffer.Bytes(), &records)
	if err != nil {
		t.Fatalf("could not decode rendered records: %s", err)
	}
	return records
}
