/*
Package explorer is the `arc api` command: a prompt-driven tour of the
declared resources. Pick a resource, then loop over actions on it
(list, show, create, edit, delete, relationships) until quitting or
switching to another resource.

Record selection goes through a fuzzy finder with the full field object
in a preview window. Create and edit payloads are composed in $EDITOR,
listings go through $PAGER when one is set. The resource being explored
is remembered across runs in a state file.
*/
package explorer

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/activerest/cli/internal/arclib"
	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/active"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

const sessionResourceKey = "resource"

const (
	actionList      = "List records"
	actionGet       = "Show one record"
	actionCreate    = "Create a record"
	actionEdit      = "Edit a record"
	actionDelete    = "Delete a record"
	actionRelations = "Explore relationships"
	actionSwitch    = "Switch resource"
	actionQuit      = "Quit"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Explore the declared resources interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pager", EnvVars: []string{"PAGER"}},
			&cli.StringFlag{Name: "editor", EnvVars: []string{"EDITOR"}},
		},
		Action: explore,
	}
}

func explore(c *cli.Context) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New(
			"the explorer needs a terminal, use 'arc list' and friends instead",
		)
	}
	resources, err := declaredResources(c)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	if len(names) == 0 {
		return errors.New("no resources declared, run 'arc add' first")
	}
	sort.Strings(names)

	name, err := pickResource(names)
	if err != nil {
		return quietInterrupt(err)
	}
	for {
		declared := resources[name]
		action, err := pickAction(declared)
		if err != nil {
			return quietInterrupt(err)
		}
		switch action {
		case actionList:
			err = listRecords(c, declared)
		case actionGet:
			err = getRecord(c, declared)
		case actionCreate:
			err = createRecord(c, declared)
		case actionEdit:
			err = editRecord(c, declared)
		case actionDelete:
			err = deleteRecord(declared)
		case actionRelations:
			err = exploreRelations(c, declared)
		case actionSwitch:
			name, err = pickResource(names)
		case actionQuit:
			return nil
		}
		if err != nil {
			if interrupted(err) {
				return nil
			}
			// A failed action should not end the tour.
			pterm.Error.Println(err)
		}
	}
}

// declaredResources builds the declared-resource map the same way the
// plain commands do, from the command line context's global flags.
func declaredResources(c *cli.Context) (map[string]*active.Resource, error) {
	cfg, err := config.LoadFromPaths(c.String("root-config"), c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %s", err)
	}
	baseURL, token, err := arclib.GetHostAndToken(
		&cfg, c.String("host"), c.String("token"),
	)
	if err != nil {
		return nil, err
	}
	session, err := arclib.GetSession(token, c.String("cacert"))
	if err != nil {
		return nil, err
	}
	return arclib.DeclareResources(&cfg, baseURL, session)
}

func pickResource(names []string) (string, error) {
	ordered := names
	if last, err := recall(sessionResourceKey); err == nil && last != "" {
		if stringSliceContains(names, last) {
			// Last session's resource goes first.
			ordered = make([]string, 0, len(names))
			ordered = append(ordered, last)
			for _, name := range names {
				if name != last {
					ordered = append(ordered, name)
				}
			}
		} else {
			_ = forget(sessionResourceKey)
		}
	}
	prompt := promptui.Select{
		Label: "Which resource",
		Items: ordered,
		Size:  10,
	}
	_, name, err := prompt.Run()
	if err != nil {
		return "", err
	}
	_ = remember(sessionResourceKey, name)
	return name, nil
}

func pickAction(declared *active.Resource) (string, error) {
	prompt := promptui.Select{
		Label: fmt.Sprintf("Exploring '%s', what now", declared.Name),
		Items: []string{
			actionList, actionGet, actionCreate, actionEdit,
			actionDelete, actionRelations, actionSwitch, actionQuit,
		},
		Size: 8,
	}
	_, action, err := prompt.Run()
	return action, err
}

func listRecords(c *cli.Context, declared *active.Resource) error {
	records, err := declared.All()
	if err != nil {
		return err
	}
	return showRecords(c.String("pager"), records)
}

func getRecord(c *cli.Context, declared *active.Resource) error {
	record, err := pickRecord(declared, fmt.Sprintf("Pick a %s", declared.Name))
	if err != nil {
		return err
	}
	return showRecord(c.String("pager"), record)
}

// createRecord seeds the editor with an existing record's fields as a
// template (identifier stripped) so the user sees the expected shape.
func createRecord(c *cli.Context, declared *active.Resource) error {
	template := active.Fields{}
	if records, err := declared.All(); err == nil && len(records) > 0 {
		for key, value := range records[0].Fields {
			if key == declared.UID {
				continue
			}
			template[key] = value
		}
	}
	fields, err := composeFields(c.String("editor"), template)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return errors.New("nothing to create, the editor returned no fields")
	}
	record, err := declared.Create(fields)
	if err != nil {
		return err
	}
	return showRecord(c.String("pager"), record)
}

func editRecord(c *cli.Context, declared *active.Resource) error {
	record, err := pickRecord(declared, "Pick the record to edit")
	if err != nil {
		return err
	}
	changed, err := editFields(c.String("editor"), record)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		pterm.Info.Println("Nothing changed")
		return nil
	}
	err = record.Update(changed)
	if err != nil {
		return err
	}
	return showRecord(c.String("pager"), record)
}

func deleteRecord(declared *active.Resource) error {
	record, err := pickRecord(declared, "Pick the record to delete")
	if err != nil {
		return err
	}
	prompt := promptui.Prompt{
		Label: fmt.Sprintf(
			"Delete %s '%v'", declared.Name, record.Fields[declared.UID],
		),
		IsConfirm: true,
	}
	_, err = prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return err
		}
		pterm.Info.Println("Nothing was deleted")
		return nil
	}
	err = record.Destroy()
	if err != nil {
		return err
	}
	pterm.Success.Printf(
		"Deleted %s '%v'\n", declared.Name, record.Fields[declared.UID],
	)
	return nil
}

func exploreRelations(c *cli.Context, declared *active.Resource) error {
	relations := declared.Relations()
	if len(relations) == 0 {
		pterm.Info.Printf("'%s' has no declared relationships\n", declared.Name)
		return nil
	}
	record, err := pickRecord(declared, "Pick the record to start from")
	if err != nil {
		return err
	}
	accessors := make([]string, 0, len(relations))
	for accessor := range relations {
		accessors = append(accessors, accessor)
	}
	sort.Strings(accessors)
	prompt := promptui.Select{Label: "Which relationship", Items: accessors}
	_, accessor, err := prompt.Run()
	if err != nil {
		return err
	}
	association, err := record.Association(accessor)
	if err != nil {
		return err
	}
	if association.Kind == active.HAS_MANY {
		records, err := association.Collection.All()
		if err != nil {
			return err
		}
		return showRecords(c.String("pager"), records)
	}
	if association.Record == nil {
		pterm.Info.Printf(
			"'%s' %v has no %s\n",
			declared.Name, record.Fields[declared.UID], accessor,
		)
		return nil
	}
	return showRecord(c.String("pager"), association.Record)
}

func interrupted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, fuzzyfinder.ErrAbort)
}

// quietInterrupt turns a Ctrl-C at a prompt into a clean exit.
func quietInterrupt(err error) error {
	if interrupted(err) {
		return nil
	}
	return err
}
