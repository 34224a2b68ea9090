package arclib

import (
	"github.com/activerest/cli/pkg/active"
)

type ListCommandArguments struct {
	ResourceName string
	Filters      []string
}

func ListCommand(
	resources map[string]*active.Resource,
	arguments *ListCommandArguments,
) error {
	declared, err := findDeclared(resources, arguments.ResourceName)
	if err != nil {
		return err
	}

	conditions, err := parseFieldArgs(arguments.Filters)
	if err != nil {
		return err
	}

	var records []*active.Record
	if len(conditions) == 0 {
		records, err = declared.All()
	} else {
		records, err = declared.Where(conditions)
	}
	if err != nil {
		return err
	}
	return renderRecords(records)
}
