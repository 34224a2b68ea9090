package arclib

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/active"
	"github.com/activerest/cli/pkg/worker_pool"
	"github.com/pterm/pterm"
)

type DumpCommandArguments struct {
	OutputDir     string
	Workers       int
	ResourceNames []string
}

type dumpTask struct {
	name     string
	declared *active.Resource
	path     string
}

func (task dumpTask) Run(send func(string), abort func()) {
	send(fmt.Sprintf("%s: fetching", task.name))

	records, err := task.declared.All()
	if err != nil {
		send(fmt.Sprintf("%s: failed (%s)", task.name, err))
		abort()
		return
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		send(fmt.Sprintf("%s: failed (%s)", task.name, err))
		abort()
		return
	}
	err = os.WriteFile(task.path, append(data, '\n'), 0644)
	if err != nil {
		send(fmt.Sprintf("%s: failed (%s)", task.name, err))
		abort()
		return
	}

	send(fmt.Sprintf(
		"%s: %d record(s) -> %s", task.name, len(records), task.path,
	))
}

func DumpCommand(
	cfg *config.Config,
	resources map[string]*active.Resource,
	arguments *DumpCommandArguments,
) error {
	cfgResources, err := figureOutResources(arguments.ResourceNames, cfg)
	if err != nil {
		return err
	}
	if len(cfgResources) == 0 {
		pterm.Error.Println("No resources found in config file.")
		return nil
	}

	err = os.MkdirAll(arguments.OutputDir, 0755)
	if err != nil {
		return err
	}

	workers := arguments.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(cfgResources) {
		workers = len(cfgResources)
	}

	pterm.Info.Printf(
		"Exporting %d collection(s) to %s\n",
		len(cfgResources), arguments.OutputDir,
	)

	pool := worker_pool.New(workers, len(cfgResources))
	for _, cfgResource := range cfgResources {
		declared, err := findDeclared(resources, cfgResource.Name)
		if err != nil {
			return err
		}
		pool.Add(dumpTask{
			name:     cfgResource.Name,
			declared: declared,
			path: filepath.Join(
				arguments.OutputDir, cfgResource.Name+".json",
			),
		})
	}
	pool.Start()
	<-pool.Wait()

	if pool.Aborted() {
		return errors.New("some exports failed")
	}
	return nil
}
