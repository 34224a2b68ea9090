package arclib

import (
	"testing"

	"github.com/activerest/cli/pkg/assert"
)

func TestCreateCommand(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()
	out := captureOutput(t)

	err := CreateCommand(resources, &CreateCommandArguments{
		ResourceName: "post",
		Fields:       []string{"title=fresh", "user_id=2"},
	})
	assert.NoError(t, err)

	record := decodeRecord(t, out)
	assert.Equal(t, record["id"], float64(5))
	assert.Equal(t, record["title"], "fresh")
	// key=value values keep their JSON type on the way through
	assert.Equal(t, record["user_id"], float64(2))
}

func TestCreateCommandNeedsFields(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := CreateCommand(resources, &CreateCommandArguments{
		ResourceName: "post",
	})
	if err == nil {
		t.Error("Expected an error for a create without fields")
	}
}

func TestEditCommandMergesFields(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()
	out := captureOutput(t)

	err := EditCommand(resources, &EditCommandArguments{
		ResourceName: "post",
		ID:           "1",
		Fields:       []string{"title=renamed"},
	})
	assert.NoError(t, err)

	record := decodeRecord(t, out)
	assert.Equal(t, record["title"], "renamed")
	// Fields that were not mentioned survive the save
	assert.Equal(t, record["body"], "quia et suscipit")
	assert.Equal(t, record["user_id"], float64(1))

	// And the server agrees
	fetched, err := resources["post"].Find(1)
	assert.NoError(t, err)
	assert.Equal(t, fetched.Fields["title"], "renamed")
}

func TestEditCommandMissingRecord(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := EditCommand(resources, &EditCommandArguments{
		ResourceName: "post",
		ID:           "999",
		Fields:       []string{"title=renamed"},
	})
	if err == nil {
		t.Error("Expected an error for a missing record")
	}
}
