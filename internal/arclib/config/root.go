package config

import (
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

type RootConfig struct {
	Hosts []Host
	Path  string
}

// Host is one section of ~/.activerestrc: a named API root and the token
// used against it.
type Host struct {
	Name  string
	URL   string
	Token string
}

func loadRootConfig() (*RootConfig, error) {
	rootPath, err := GetRootPath()
	if err != nil {
		return nil, nil
	}
	return loadRootConfigFromPath(rootPath)
}

func loadRootConfigFromPath(path string) (*RootConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &RootConfig{Path: path}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rootCfg, err := loadRootConfigFromBytes(data)
	if err != nil {
		return nil, err
	}
	rootCfg.Path = path
	return rootCfg, nil
}

func loadRootConfigFromBytes(data []byte) (*RootConfig, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	var result RootConfig

	for _, section := range cfg.Sections() {
		if section.Name() == "DEFAULT" {
			continue
		}
		host := Host{
			Name:  section.Name(),
			URL:   section.Key("url").String(),
			Token: section.Key("token").String(),
		}
		result.Hosts = append(result.Hosts, host)
	}

	result.sortHosts()

	return &result, nil
}

func (rootCfg *RootConfig) sortHosts() {
	sort.Slice(rootCfg.Hosts, func(i, j int) bool {
		left := rootCfg.Hosts[i].Name
		right := rootCfg.Hosts[j].Name
		return strings.Compare(left, right) == -1
	})
}

func (rootCfg *RootConfig) save() error {
	return rootCfg.saveToPath()
}

func (rootCfg *RootConfig) saveToPath() error {
	file, err := os.OpenFile(rootCfg.Path,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		0755)
	if err != nil {
		return err
	}
	defer file.Close()
	return rootCfg.saveToWriter(file)
}

func (rootCfg *RootConfig) saveToWriter(file io.Writer) error {
	cfg := ini.Empty(ini.LoadOptions{})

	for _, host := range rootCfg.Hosts {
		section, err := cfg.NewSection(host.Name)
		if err != nil {
			return err
		}

		if host.URL != "" {
			_, err := section.NewKey("url", host.URL)
			if err != nil {
				return err
			}
		}

		if host.Token != "" {
			_, err := section.NewKey("token", host.Token)
			if err != nil {
				return err
			}
		}
	}

	_, err := cfg.WriteTo(file)
	return err
}

func rootConfigsEqual(left, right *RootConfig) bool {
	if (left == nil && right != nil) || (left != nil && right == nil) {
		return false
	}
	if len(left.Hosts) != len(right.Hosts) {
		return false
	}

	for i := range left.Hosts {
		if left.Hosts[i] != right.Hosts[i] {
			return false
		}
	}
	return true
}

/*
GetRootPath
Return the path of the root configuration: $ARC_ROOT_CONFIG when set,
~/.activerestrc otherwise. */
func GetRootPath() (string, error) {
	if path := os.Getenv("ARC_ROOT_CONFIG"); path != "" {
		return path, nil
	}
	homeDir := os.Getenv("HOME")
	if homeDir == "" {
		usr, err := user.Current()
		if err != nil {
			return "", err
		}
		homeDir = usr.HomeDir
	}
	return filepath.Join(homeDir, ".activerestrc"), nil
}
