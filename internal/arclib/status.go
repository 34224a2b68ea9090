package arclib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/active"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

type StatusCommandArguments struct {
	ResourceNames []string
}

func StatusCommand(
	cfg *config.Config,
	resources map[string]*active.Resource,
	arguments *StatusCommandArguments,
) error {
	cfgResources, err := figureOutResources(arguments.ResourceNames, cfg)
	if err != nil {
		return err
	}

	// If there are no resources found stop
	if len(cfgResources) == 0 {
		pterm.Error.Println("No resources found in config file.")
		return nil
	}

	pterm.Info.Printf("Found %d declared resource(s)\n", len(cfgResources))

	cyan := color.New(color.FgCyan).SprintFunc()
	for i, cfgResource := range cfgResources {
		declared, err := findDeclared(resources, cfgResource.Name)
		if err != nil {
			return err
		}

		endpoint := strings.TrimRight(declared.URL, "/") + "/" + declared.Path
		fmt.Printf(
			"%s -> %s (%d of %d)\n",
			cyan(declared.Name), endpoint, i+1, len(cfgResources),
		)
		fmt.Printf("- identifier: %s\n", declared.UID)

		relations := declared.Relations()
		accessors := make([]string, 0, len(relations))
		for accessor := range relations {
			accessors = append(accessors, accessor)
		}
		sort.Strings(accessors)
		for _, accessor := range accessors {
			fmt.Printf("- %s: %s\n", kindLabel(relations[accessor]), accessor)
		}
	}
	return nil
}
