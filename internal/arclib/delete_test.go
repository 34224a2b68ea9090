package arclib

import (
	"testing"

	"github.com/activerest/cli/pkg/active"
	"github.com/activerest/cli/pkg/assert"
)

func TestDeleteCommandForce(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := DeleteCommand(resources, &DeleteCommandArguments{
		ResourceName: "todo",
		ID:           "3",
		Force:        true,
	})
	assert.NoError(t, err)

	_, err = resources["todo"].Find(3)
	if !active.IsNotFound(err) {
		t.Errorf("Got %v, expected a 404 after the delete", err)
	}
}

func TestDeleteCommandRefusesWithoutForce(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	// Test runs are not attached to a terminal, so the confirmation
	// prompt cannot be offered.
	err := DeleteCommand(resources, &DeleteCommandArguments{
		ResourceName: "todo",
		ID:           "1",
	})
	if err == nil {
		t.Error("Expected a refusal without --force")
	}

	record, err := resources["todo"].Find(1)
	assert.NoError(t, err)
	if record == nil {
		t.Error("The record should have survived")
	}
}

func TestDeleteCommandMissingRecord(t *testing.T) {
	_, resources, teardown := beforeCommandTest(t)
	defer teardown()

	err := DeleteCommand(resources, &DeleteCommandArguments{
		ResourceName: "todo",
		ID:           "999",
		Force:        true,
	})
	if err == nil {
		t.Error("Expected an error for a missing record")
	}
}
