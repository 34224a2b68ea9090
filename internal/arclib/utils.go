package arclib

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/active"
	"github.com/mattn/go-isatty"
)

// Version is stamped at build time.
var Version = "1.0.0"

// commandOutput is where rendered records land. Tests point it at a
// buffer.
var commandOutput io.Writer = os.Stdout

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

/*
parseFieldArgs turns trailing `key=value` arguments into record fields.
Values that parse as JSON keep their type, so `completed=true` and
`user_id=3` do not travel as strings; anything else stays a string.
*/
func parseFieldArgs(args []string) (active.Fields, error) {
	fields := make(active.Fields, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf(
				"invalid field argument '%s', expected key=value", arg,
			)
		}
		fields[parts[0]] = parseFieldValue(parts[1])
	}
	return fields, nil
}

func parseFieldValue(value string) any {
	decoder := json.NewDecoder(strings.NewReader(value))
	decoder.UseNumber()
	var decoded any
	if err := decoder.Decode(&decoded); err != nil || decoder.More() {
		return value
	}
	return decoded
}

func renderRecord(record *active.Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(commandOutput, string(data))
	return nil
}

func renderRecords(records []*active.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(commandOutput, string(data))
	return nil
}

func findDeclared(
	resources map[string]*active.Resource, name string,
) (*active.Resource, error) {
	resource, exists := resources[name]
	if !exists {
		return nil, fmt.Errorf(
			"could not find resource '%s' in local configuration or your "+
				"resource name is invalid",
			name,
		)
	}
	return resource, nil
}

func figureOutResources(
	resourceNames []string,
	cfg *config.Config,
) ([]*config.Resource, error) {
	var result []*config.Resource

	if len(resourceNames) != 0 {
		result = make([]*config.Resource, 0, len(resourceNames))
		for _, resourceName := range resourceNames {
			cfgResource := cfg.FindResource(resourceName)
			if cfgResource == nil {
				return nil, fmt.Errorf(
					"could not find resource '%s' in local configuration or "+
						"your resource name is invalid",
					resourceName,
				)
			}

			result = append(result, cfgResource)
		}
	} else {
		for i := range cfg.Local.Resources {
			result = append(result, &cfg.Local.Resources[i])
		}
	}
	return result, nil
}

func kindLabel(kind int) string {
	switch kind {
	case active.BELONGS_TO:
		return "belongs_to"
	case active.HAS_ONE:
		return "has_one"
	case active.HAS_MANY:
		return "has_many"
	default:
		return "unknown"
	}
}
