package arclib

import (
	"testing"

	"github.com/activerest/cli/pkg/assert"
)

func TestListCommand(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()
	out := captureOutput(t)

	err := ListCommand(resources, &ListCommandArguments{
		ResourceName: "post",
	})
	assert.NoError(t, err)

	records := decodeRecords(t, out)
	assert.Equal(t, len(records), 4)
}

func TestListCommandWithFilters(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()
	out := captureOutput(t)

	err := ListCommand(resources, &ListCommandArguments{
		ResourceName: "post",
		Filters:      []string{"user_id=1"},
	})
	assert.NoError(t, err)

	records := decodeRecords(t, out)
	assert.Equal(t, len(records), 2)
	for _, record := range records {
		assert.Equal(t, record["user_id"], float64(1))
	}
}

func TestListCommandUnknownResource(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := ListCommand(resources, &ListCommandArguments{
		ResourceName: "unicorn",
	})
	if err == nil {
		t.Error("Expected an error for an undeclared resource")
	}
}

func TestListCommandBadFilter(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := ListCommand(resources, &ListCommandArguments{
		ResourceName: "post",
		Filters:      []string{"nonsense"},
	})
	if err == nil {
		t.Error("Expected an error for a filter without '='")
	}
}

func TestGetCommand(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()
	out := captureOutput(t)

	err := GetCommand(resources, &GetCommandArguments{
		ResourceName: "user",
		ID:           "1",
	})
	assert.NoError(t, err)

	record := decodeRecord(t, out)
	assert.Equal(t, record["name"], "Leanne Graham")
}

func TestGetCommandMissingRecord(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := GetCommand(resources, &GetCommandArguments{
		ResourceName: "user",
		ID:           "999",
	})
	if err == nil {
		t.Error("Expected an error for a missing record")
	}
}
