package arclib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/gosimple/slug"
	"github.com/manifoldco/promptui"
)

var PromptMap = map[string]map[string]string{
	"resourceName": {
		"text": `
The arc client maps declared resources onto a REST API. The declarations
are stored in a file called .arc/config in your current directory, one
section per resource.`,
		"label": "What is the name of the resource?",
	},
	"relationTargets": {
		"text": `
Targets are names of other resources, separated by spaces. They do not
have to be declared yet; an association looks its target up when it is
first used.`,
		"label": "Which resources does '%s' point at?",
	},
}

type AddCommandArguments struct {
	Name      string
	Path      string
	UID       string
	BelongsTo []string
	HasOne    []string
	HasMany   []string
}

// underscoreName funnels arbitrary user input into the snake_case form
// declarations use everywhere else.
func underscoreName(input string) string {
	return strings.ReplaceAll(slug.Make(input), "-", "_")
}

func validateResourceName(input string) error {
	if len(input) < 1 {
		return errors.New("you need to add a resource name")
	}
	if underscoreName(input) == "" {
		return errors.New("the name needs at least one letter or digit")
	}
	return nil
}

func getSelectTemplate(str string) *promptui.SelectTemplates {
	var template = &promptui.SelectTemplates{
		Active:   "> {{.Name }} ({{.Value | faint}})",
		Inactive: "  {{.Name }} ({{.Value | faint}})",
		Selected: fmt.Sprintf(`%s {{ "%s:" | faint }} {{ .Name }}`,
			promptui.IconGood, str),
	}
	return template
}

func getInputTemplate(str string) *promptui.PromptTemplates {
	var template = &promptui.PromptTemplates{
		Prompt:  fmt.Sprintf("%s {{ . }} ", promptui.IconInitial),
		Valid:   fmt.Sprintf("%s {{ . }} ", promptui.IconGood),
		Invalid: fmt.Sprintf("%s {{ . }} ", promptui.IconBad),
		Success: fmt.Sprintf(`%s {{ "%s:" | faint }} `,
			promptui.IconGood, str),
	}
	return template
}

func AddCommand(cfg *config.Config, arguments *AddCommandArguments) error {
	if err := validateResourceName(arguments.Name); err != nil {
		return err
	}
	name := underscoreName(arguments.Name)
	if cfg.FindResource(name) != nil {
		return fmt.Errorf(
			"resource '%s' is already declared, edit .arc/config to "+
				"change it",
			name,
		)
	}

	resource := config.Resource{
		Name:      name,
		Path:      arguments.Path,
		UID:       arguments.UID,
		BelongsTo: relationList(arguments.BelongsTo),
		HasOne:    relationList(arguments.HasOne),
		HasMany:   relationList(arguments.HasMany),
	}

	cfg.AddResource(resource)
	return cfg.Save()
}

func relationList(targets []string) []config.Relation {
	var relations []config.Relation
	for _, target := range targets {
		target = underscoreName(target)
		if target == "" {
			continue
		}
		relations = append(relations, config.Relation{Target: target})
	}
	return relations
}

func AddCommandInteractive(cfg *config.Config) error {
	type selectedItem struct {
		Name  string
		Value string
	}
	var answers AddCommandArguments

	fmt.Println(PromptMap["resourceName"]["text"])
	fmt.Println()

	// Prompt for the resource name
	inputPrompt := promptui.Prompt{
		Label:     PromptMap["resourceName"]["label"],
		Templates: getInputTemplate("Resource name"),
		Validate:  validateResourceName,
	}

	// Run prompt
	res, err := inputPrompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return err
		} else {
			return fmt.Errorf("something went wrong: %v", err)
		}
	}
	answers.Name = res

	// Prompt for the collection path
	inputPrompt = promptui.Prompt{
		Label: "What is the collection path? " +
			"(empty for the plural of the name)",
		Templates: getInputTemplate("Collection path"),
	}

	res, err = inputPrompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return err
		} else {
			return fmt.Errorf("something went wrong: %v", err)
		}
	}
	answers.Path = res

	// Prompt for the identifier field
	inputPrompt = promptui.Prompt{
		Label:     "Which field identifies a record? (empty for 'id')",
		Templates: getInputTemplate("Identifier field"),
	}

	res, err = inputPrompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return err
		} else {
			return fmt.Errorf("something went wrong: %v", err)
		}
	}
	answers.UID = res

	selectItems := []selectedItem{
		{Name: "It belongs to other resources", Value: "belongs_to"},
		{Name: "It has one of another resource", Value: "has_one"},
		{Name: "It has many of another resource", Value: "has_many"},
		{Name: "No more relationships", Value: "done"},
	}

	for {
		prompt := promptui.Select{
			Label:     "Add a relationship?",
			Items:     selectItems,
			Templates: getSelectTemplate("Relationship kind"),
		}

		fmt.Println()
		idx, _, err := prompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt {
				return err
			} else {
				return fmt.Errorf("something went wrong: %v", err)
			}
		}
		kind := selectItems[idx].Value
		if kind == "done" {
			break
		}

		fmt.Println(PromptMap["relationTargets"]["text"])
		inputPrompt := promptui.Prompt{
			Label: fmt.Sprintf(
				PromptMap["relationTargets"]["label"], answers.Name,
			),
			Templates: getInputTemplate("Targets"),
		}
		res, err := inputPrompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt {
				return err
			} else {
				return fmt.Errorf("something went wrong: %v", err)
			}
		}

		targets := strings.Fields(res)
		switch kind {
		case "belongs_to":
			answers.BelongsTo = append(answers.BelongsTo, targets...)
		case "has_one":
			answers.HasOne = append(answers.HasOne, targets...)
		case "has_many":
			answers.HasMany = append(answers.HasMany, targets...)
		}
	}

	return AddCommand(cfg, &answers)
}
