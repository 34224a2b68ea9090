package arclib

import (
	"errors"
	"fmt"

	"github.com/activerest/cli/pkg/active"
	"github.com/manifoldco/promptui"
	"github.com/pterm/pterm"
)

type DeleteCommandArguments struct {
	ResourceName string
	ID           string
	Force        bool
}

func DeleteCommand(
	resources map[string]*active.Resource,
	arguments *DeleteCommandArguments,
) error {
	declared, err := findDeclared(resources, arguments.ResourceName)
	if err != nil {
		return err
	}

	// Fetch first so a typo'd identifier fails before anything is touched.
	record, err := declared.Find(arguments.ID)
	if err != nil {
		return err
	}

	if !arguments.Force {
		if !isInteractive() {
			return errors.New(
				"refusing to delete without --force in a non-interactive run",
			)
		}
		prompt := promptui.Prompt{
			Label: fmt.Sprintf(
				"Delete %s '%v'", declared.Name, record.Fields[declared.UID],
			),
			IsConfirm: true,
		}

		_, err := prompt.Run()

		if err != nil {
			fmt.Println("Delete was cancelled!")
			return nil
		}
	}

	msg := fmt.Sprintf("Deleting %s '%s'", declared.Name, arguments.ID)

	spinner, err := pterm.DefaultSpinner.Start(msg)
	if err != nil {
		return err
	}

	err = record.Destroy()
	if err != nil {
		spinner.Fail(
			fmt.Sprintf(
				"Deletion of %s '%s' failed", declared.Name, arguments.ID,
			),
		)
		return err
	}
	spinner.Success(
		fmt.Sprintf("%s '%s' deleted", declared.Name, arguments.ID),
	)
	return nil
}
