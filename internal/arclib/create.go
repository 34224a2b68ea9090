package arclib

import (
	"errors"

	"github.com/activerest/cli/pkg/active"
)

type CreateCommandArguments struct {
	ResourceName string
	Fields       []string
}

func CreateCommand(
	resources map[string]*active.Resource,
	arguments *CreateCommandArguments,
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
			"nothing to create, pass at least one key=value field",
		)
	}

	record, err := declared.Create(fields)
	if err != nil {
		return err
	}
	return renderRecord(record)
}
