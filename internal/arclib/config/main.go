/*
Package config
Slightly object-oriented arc configuration package.

Usage:

    import "github.com/activerest/cli/internal/arclib/config"

    cfg, err := config.Load()  // Loads based on current directory
    if err != nil { ... }

    // Lets add a resource
    cfg.AddResource(config.Resource{
        Name:      "comment",
        BelongsTo: []config.Relation{{Target: "post"}},
    })

    cfg.Save()  // Saves changes to disk

    resource := cfg.FindResource("comment")
    resource.UID = "uuid"
    cfg.Save()

*/
package config

type Config struct {
	Root  *RootConfig
	Local *LocalConfig
}

/*
Load arc configuration from the usual paths:

- $ARC_ROOT_CONFIG or ~/.activerestrc for the root configuration

- ./.arc/config (or the nearest parent's) for the local configuration
*/
func Load() (Config, error) {
	rootConfig, err := loadRootConfig()
	if err != nil {
		return Config{}, err
	}

	localConfig, err := loadLocalConfig()
	if err != nil {
		return Config{}, err
	}

	return Config{Root: rootConfig, Local: localConfig}, nil
}

func LoadFromPaths(rootPath, localPath string) (Config, error) {
	var err error
	var rootConfig *RootConfig
	if rootPath == "" {
		rootConfig, err = loadRootConfig()
	} else {
		rootConfig, err = loadRootConfigFromPath(rootPath)
	}
	if err != nil {
		return Config{}, err
	}

	var localConfig *LocalConfig
	if localPath == "" {
		localConfig, err = loadLocalConfig()
	} else {
		localConfig, err = loadLocalConfigFromPath(localPath)
	}
	if err != nil {
		return Config{}, err
	}

	return Config{Root: rootConfig, Local: localConfig}, nil
}

/*
GetActiveHost
Return the root-config host the local configuration points at with its
'host' key, nil when nothing matches. */
func (cfg *Config) GetActiveHost() *Host {
	if cfg.Root == nil || len(cfg.Root.Hosts) == 0 || cfg.Local == nil {
		return nil
	}
	return cfg.FindHost(cfg.Local.Host)
}

/*
BaseURL
Return the API root every declared resource hangs off. An explicit 'url'
key in the local api section wins; otherwise the active host's url. */
func (cfg *Config) BaseURL() string {
	if cfg.Local != nil && cfg.Local.URL != "" {
		return cfg.Local.URL
	}
	if host := cfg.GetActiveHost(); host != nil {
		return host.URL
	}
	return ""
}

// Token returns the active host's token, "" when there is none.
func (cfg *Config) Token() string {
	if host := cfg.GetActiveHost(); host != nil {
		return host.Token
	}
	return ""
}

/*
Save
Save changes to disk */
func (cfg *Config) Save() error {
	if cfg.Root != nil {
		var oldRootConfig *RootConfig
		var err error
		if cfg.Root.Path != "" {
			oldRootConfig, err = loadRootConfigFromPath(cfg.Root.Path)
		} else {
			oldRootConfig, err = loadRootConfig()
		}
		if err != nil {
			return err
		}

		cfg.Root.sortHosts()

		if !rootConfigsEqual(oldRootConfig, cfg.Root) {
			err = cfg.Root.save()
			if err != nil {
				return err
			}
		}
	}

	if cfg.Local != nil {
		var oldLocalConfig *LocalConfig
		var err error
		if cfg.Local.Path != "" {
			oldLocalConfig, err = loadLocalConfigFromPath(cfg.Local.Path)
		} else {
			oldLocalConfig, err = loadLocalConfig()
		}
		if err != nil {
			oldLocalConfig = nil
		}

		cfg.Local.sortResources()

		if oldLocalConfig == nil ||
			!localConfigsEqual(oldLocalConfig, cfg.Local) {
			err = cfg.Local.Save()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

/*
FindHost
Return a Host reference whose name or url matches the argument.
*/
func (cfg *Config) FindHost(hostname string) *Host {
	if cfg.Root == nil || cfg.Root.Hosts == nil {
		return nil
	}
	for i := range cfg.Root.Hosts {
		// range returns copies: https://stackoverflow.com/q/20185511
		host := &cfg.Root.Hosts[i]
		if host.Name == hostname {
			return host
		}
	}
	for i := range cfg.Root.Hosts {
		// range returns copies: https://stackoverflow.com/q/20185511
		host := &cfg.Root.Hosts[i]
		if host.URL == hostname {
			return host
		}
	}
	return nil
}

/*
FindResource
Return a Resource reference whose name matches the argument.
*/
func (cfg *Config) FindResource(name string) *Resource {
	if cfg.Local == nil {
		return nil
	}
	for i := range cfg.Local.Resources {
		// range returns copies: https://stackoverflow.com/q/20185511
		resource := &cfg.Local.Resources[i]
		if resource.Name == name {
			return resource
		}
	}
	return nil
}

/*
RemoveResource
Removes a resource from the Local Resources by creating a new list and
replacing the existing list
*/
func (cfg *Config) RemoveResource(r Resource) {
	cfgResources := []Resource{}
	for _, resource := range cfg.Local.Resources {
		if resource.Name == r.Name {
			continue
		}
		cfgResources = append(cfgResources, resource)

	}

	cfg.Local.Resources = cfgResources
}

/*
AddResource
Adds a resource to the Local.Resources list
*/
func (cfg *Config) AddResource(resource Resource) {
	cfg.Local.Resources = append(cfg.Local.Resources, resource)
}
