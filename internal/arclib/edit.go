package arclib

import (
	"errors"

	"github.com/activerest/cli/pkg/active"
)

type EditCommandArguments struct {
	ResourceName string
	ID           string
	Fields       []string
}

// EditCommand merges the given fields into the record and saves the
// result, so unmentioned fields survive the round trip.
func EditCommand(
	resources map[string]*active.Resource,
	arguments *EditCommandArguments,
) error {
	declared, err := findDeclared(resources, arguments.ResourceName)
	if err != nil {
		return err
	}

	fields, err := parseFieldArgs(arguments.Fields)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return errors.New(
			"nothing to change, pass at least one key=value field",
		)
	}

	record, err := declared.Find(arguments.ID)
	if err != nil {
		return err
	}
	err = record.Update(fields)
	if err != nil {
		return err
	}
	return renderRecord(record)
}
