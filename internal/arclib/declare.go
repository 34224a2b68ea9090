package arclib

import (
	"fmt"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/active"
)

/*
DeclareResources
Materialize every `[resource:<name>]` section of the local configuration
into a declared active.Resource, all sharing one base URL and session.
The returned map is keyed by the section name, which is what every
command's resource argument is matched against.

Declaration replaces the whole process registry first: the manifest is the
entire declared world of an invocation.
*/
func DeclareResources(
	cfg *config.Config, baseURL string, session *active.Session,
) (map[string]*active.Resource, error) {
	active.ResetRegistry()

	resources := make(map[string]*active.Resource, len(cfg.Local.Resources))
	for i := range cfg.Local.Resources {
		cfgResource := &cfg.Local.Resources[i]
		declared, err := active.New(resourceConfig(cfgResource, baseURL, session))
		if err != nil {
			return nil, fmt.Errorf(
				"declaring resource '%s': %w", cfgResource.Name, err,
			)
		}
		resources[cfgResource.Name] = declared
	}
	return resources, nil
}

func resourceConfig(
	cfgResource *config.Resource, baseURL string, session *active.Session,
) active.Config {
	return active.Config{
		Name:    cfgResource.Name,
		Path:    cfgResource.Path,
		UID:     cfgResource.UID,
		URL:     baseURL,
		Session: session,

		BelongsTo: declarationShape(cfgResource.BelongsTo),
		HasOne:    declarationShape(cfgResource.HasOne),
		HasMany:   declarationShape(cfgResource.HasMany),

		BelongsToName: cfgResource.BelongsToName,
		BelongsToPath: cfgResource.BelongsToPath,
		HasOneName:    cfgResource.HasOneName,
		HasOnePath:    cfgResource.HasOnePath,
		HasManyName:   cfgResource.HasManyName,
		HasManyPath:   cfgResource.HasManyPath,
	}
}

// declarationShape picks the narrowest declaration shape a relation list
// needs: a single bare target stays a plain name so the class-level
// options keep applying, several bare targets become a set, and any
// per-target override upgrades the whole list to the mapping shape.
func declarationShape(relations []config.Relation) any {
	if len(relations) == 0 {
		return nil
	}

	overridden := false
	for _, relation := range relations {
		if relation.Name != "" || relation.Path != "" {
			overridden = true
			break
		}
	}
	if overridden {
		shape := make(map[string]active.Options, len(relations))
		for _, relation := range relations {
			shape[relation.Target] = active.Options{
				Name: relation.Name,
				Path: relation.Path,
			}
		}
		return shape
	}

	if len(relations) == 1 {
		return relations[0].Target
	}

	targets := make([]string, 0, len(relations))
	for _, relation := range relations {
		targets = append(targets, relation.Target)
	}
	return targets
}
