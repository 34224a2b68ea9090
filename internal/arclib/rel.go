package arclib

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/activerest/cli/pkg/active"
	"github.com/pterm/pterm"
)

type RelCommandArguments struct {
	ResourceName string
	ID           string
	Association  string
	Set          string
	Unset        bool
}

/*
RelCommand traverses a declared association of one record. Without flags
it prints what is on the other side: the related record, a note when a
has_one is absent, or every record of a scoped collection. '--set JSON'
replaces a singular association's value, '--unset' removes it; both
report the resulting state.
*/
func RelCommand(
	resources map[string]*active.Resource,
	arguments *RelCommandArguments,
) error {
	if arguments.Set != "" && arguments.Unset {
		return errors.New("you cannot use both '--set' and '--unset'")
	}

	declared, err := findDeclared(resources, arguments.ResourceName)
	if err != nil {
		return err
	}
	record, err := declared.Find(arguments.ID)
	if err != nil {
		return err
	}

	if arguments.Unset {
		err = record.DeleteAssociation(arguments.Association)
		if err != nil {
			return err
		}
		pterm.Info.Printf(
			"Association '%s' of %s '%s' removed\n",
			arguments.Association, declared.Name, arguments.ID,
		)
		return nil
	}

	if arguments.Set != "" {
		decoder := json.NewDecoder(strings.NewReader(arguments.Set))
		decoder.UseNumber()
		var fields active.Fields
		if err := decoder.Decode(&fields); err != nil {
			return fmt.Errorf("invalid JSON for --set: %w", err)
		}
		err = record.SetAssociation(arguments.Association, fields)
		if err != nil {
			return err
		}
	}

	association, err := record.Association(arguments.Association)
	if err != nil {
		return err
	}
	if association.Kind == active.HAS_MANY {
		records, err := association.Collection.All()
		if err != nil {
			return err
		}
		return renderRecords(records)
	}
	if association.Record == nil {
		pterm.Info.Printf(
			"%s '%s' has no %s\n",
			declared.Name, arguments.ID, arguments.Association,
		)
		return nil
	}
	return renderRecord(association.Record)
}
