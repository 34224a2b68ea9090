package arclib

import (
	"github.com/activerest/cli/pkg/active"
)

type GetCommandArguments struct {
	ResourceName string
	ID           string
}

func GetCommand(
	resources map[string]*active.Resource,
	arguments *GetCommandArguments,
) error {
	declared, err := findDeclared(resources, arguments.ResourceName)
	if err != nil {
		return err
	}

	record, err := declared.Find(arguments.ID)
	if err != nil {
		return err
	}
	return renderRecord(record)
}
