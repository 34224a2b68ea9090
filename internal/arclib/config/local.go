package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

type LocalConfig struct {
	Host      string
	URL       string
	Resources []Resource
	Path      string
}

/*
Resource is one `[resource:<name>]` section. The relationship lists come
from three key forms:

    belongs_to = user                    plain target list
    has_many = post album todo           several targets
    has_many.vote.path = posts/:id/likes dotted per-target override

A dotted key implies its target even when the plain key does not list it.
The *Name and *Path fields carry the class-level `belongs_to_name` style
keys that apply when a kind declares a single bare target.
*/
type Resource struct {
	Name      string
	Path      string
	UID       string
	BelongsTo []Relation
	HasOne    []Relation
	HasMany   []Relation

	BelongsToName string
	BelongsToPath string
	HasOneName    string
	HasOnePath    string
	HasManyName   string
	HasManyPath   string
}

// Relation is one declared association target. Name and Path stay empty
// unless a dotted key set them.
type Relation struct {
	Target string
	Name   string
	Path   string
}

func loadLocalConfig() (*LocalConfig, error) {
	localPath, err := findLocalPath("")
	if err != nil {
		return nil, err
	}
	return loadLocalConfigFromPath(localPath)
}

func loadLocalConfigFromPath(path string) (*LocalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(
				"local configuration file does not exist, run 'arc init' "+
					"first: %w",
				err,
			)
		} else {
			return nil, err
		}
	}
	localCfg, err := loadLocalConfigFromBytes(data)
	if err != nil {
		return nil, err
	}
	localCfg.Path = path
	return localCfg, nil
}

func loadLocalConfigFromBytes(data []byte) (*LocalConfig, error) {
	var result LocalConfig

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	apiSection, err := cfg.GetSection("api")
	if err != nil {
		return nil, errors.New("local config file has no api section")
	}
	result.Host = apiSection.Key("host").String()
	result.URL = apiSection.Key("url").String()
	if result.Host == "" && result.URL == "" {
		return nil, errors.New(
			"local config's api section names no host or url",
		)
	}

	for _, section := range cfg.Sections() {
		if section.Name() == "api" || section.Name() == "DEFAULT" {
			continue
		}

		resource, err := sectionToResource(section)
		if err != nil {
			return nil, err
		}
		result.Resources = append(result.Resources, resource)
	}

	result.sortResources()

	return &result, nil
}

func sectionToResource(section *ini.Section) (Resource, error) {
	if strings.Index(section.Name(), "resource:") != 0 {
		return Resource{}, fmt.Errorf(
			"invalid section '%s', expected 'resource:<name>'",
			section.Name(),
		)
	}
	name := section.Name()[len("resource:"):]
	if name == "" {
		return Resource{}, errors.New("resource section with an empty name")
	}

	resource := Resource{
		Name: name,
		Path: section.Key("path").String(),
		UID:  section.Key("uid").String(),

		BelongsToName: section.Key("belongs_to_name").String(),
		BelongsToPath: section.Key("belongs_to_path").String(),
		HasOneName:    section.Key("has_one_name").String(),
		HasOnePath:    section.Key("has_one_path").String(),
		HasManyName:   section.Key("has_many_name").String(),
		HasManyPath:   section.Key("has_many_path").String(),
	}
	resource.BelongsTo = parseRelations(section, "belongs_to")
	resource.HasOne = parseRelations(section, "has_one")
	resource.HasMany = parseRelations(section, "has_many")
	return resource, nil
}

func parseRelations(section *ini.Section, kind string) []Relation {
	var relations []Relation
	for _, target := range splitTargets(section.Key(kind).String()) {
		relations = append(relations, Relation{Target: target})
	}

	find := func(target string) *Relation {
		for i := range relations {
			if relations[i].Target == target {
				return &relations[i]
			}
		}
		relations = append(relations, Relation{Target: target})
		return &relations[len(relations)-1]
	}

	prefix := kind + "."
	for _, key := range section.Keys() {
		if strings.Index(key.Name(), prefix) != 0 {
			continue
		}
		parts := strings.SplitN(key.Name()[len(prefix):], ".", 2)
		if len(parts) != 2 {
			continue
		}
		relation := find(parts[0])
		switch parts[1] {
		case "name":
			relation.Name = key.String()
		case "path":
			relation.Path = key.String()
		}
	}
	return relations
}

func splitTargets(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

func (localCfg LocalConfig) Save() error {
	return localCfg.saveToPath(localCfg.Path)
}

func (localCfg LocalConfig) saveToPath(path string) error {
	file, err := os.OpenFile(path,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		0755)
	if err != nil {
		return err
	}
	defer file.Close()
	return localCfg.saveToWriter(file)
}

func (localCfg LocalConfig) saveToWriter(file io.Writer) error {
	cfg := ini.Empty(ini.LoadOptions{})

	api, err := cfg.NewSection("api")
	if err != nil {
		return err
	}
	if localCfg.Host != "" {
		_, err = api.NewKey("host", localCfg.Host)
		if err != nil {
			return err
		}
	}
	if localCfg.URL != "" {
		_, err = api.NewKey("url", localCfg.URL)
		if err != nil {
			return err
		}
	}

	for _, resource := range localCfg.Resources {
		section, err := cfg.NewSection(resource.SectionName())
		if err != nil {
			return err
		}

		if resource.Path != "" {
			_, err := section.NewKey("path", resource.Path)
			if err != nil {
				return err
			}
		}

		if resource.UID != "" {
			_, err := section.NewKey("uid", resource.UID)
			if err != nil {
				return err
			}
		}

		kinds := []struct {
			key       string
			relations []Relation
		}{
			{"belongs_to", resource.BelongsTo},
			{"has_one", resource.HasOne},
			{"has_many", resource.HasMany},
		}
		for _, kind := range kinds {
			err = saveRelations(section, kind.key, kind.relations)
			if err != nil {
				return err
			}
		}

		options := []struct {
			key   string
			value string
		}{
			{"belongs_to_name", resource.BelongsToName},
			{"belongs_to_path", resource.BelongsToPath},
			{"has_one_name", resource.HasOneName},
			{"has_one_path", resource.HasOnePath},
			{"has_many_name", resource.HasManyName},
			{"has_many_path", resource.HasManyPath},
		}
		for _, option := range options {
			if option.value == "" {
				continue
			}
			_, err := section.NewKey(option.key, option.value)
			if err != nil {
				return err
			}
		}
	}

	_, err = cfg.WriteTo(file)
	return err
}

func saveRelations(
	section *ini.Section, kind string, relations []Relation,
) error {
	if len(relations) == 0 {
		return nil
	}

	targets := make([]string, 0, len(relations))
	for _, relation := range relations {
		targets = append(targets, relation.Target)
	}
	_, err := section.NewKey(kind, strings.Join(targets, " "))
	if err != nil {
		return err
	}

	for _, relation := range relations {
		if relation.Name != "" {
			_, err := section.NewKey(
				fmt.Sprintf("%s.%s.name", kind, relation.Target),
				relation.Name,
			)
			if err != nil {
				return err
			}
		}
		if relation.Path != "" {
			_, err := section.NewKey(
				fmt.Sprintf("%s.%s.path", kind, relation.Target),
				relation.Path,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (localCfg *LocalConfig) sortResources() {
	sort.Slice(localCfg.Resources, func(i, j int) bool {
		left := localCfg.Resources[i].Name
		right := localCfg.Resources[j].Name
		return strings.Compare(left, right) == -1
	})
}

func localConfigsEqual(left, right *LocalConfig) bool {
	if left.Host != right.Host {
		return false
	}
	if left.URL != right.URL {
		return false
	}

	if len(left.Resources) != len(right.Resources) {
		return false
	}
	for i := range left.Resources {
		if !resourcesEqual(&left.Resources[i], &right.Resources[i]) {
			return false
		}
	}

	return true
}

func resourcesEqual(left, right *Resource) bool {
	if left.Name != right.Name {
		return false
	}
	if left.Path != right.Path {
		return false
	}
	if left.UID != right.UID {
		return false
	}

	if left.BelongsToName != right.BelongsToName ||
		left.BelongsToPath != right.BelongsToPath {
		return false
	}
	if left.HasOneName != right.HasOneName ||
		left.HasOnePath != right.HasOnePath {
		return false
	}
	if left.HasManyName != right.HasManyName ||
		left.HasManyPath != right.HasManyPath {
		return false
	}

	return relationsEqual(left.BelongsTo, right.BelongsTo) &&
		relationsEqual(left.HasOne, right.HasOne) &&
		relationsEqual(left.HasMany, right.HasMany)
}

func relationsEqual(left, right []Relation) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}

// SectionName is the resource's section header in the configuration file.
func (resource *Resource) SectionName() string {
	return "resource:" + resource.Name
}

func findLocalPath(path string) (string, error) {
	curDir := path
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		curDir = dir
	}

	fp := filepath.Join(curDir, ".arc", "config")
	if _, err := os.Stat(fp); os.IsNotExist(err) {
		curDir = filepath.Dir(curDir)
		if curDir != "/" && curDir != "." {
			return findLocalPath(curDir)
		} else {
			return "", nil
		}

	}
	return filepath.Join(curDir, ".arc", "config"), nil
}
