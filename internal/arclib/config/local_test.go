package config

import (
	"bytes"
	"testing"
)

func TestLoadExampleLocalConfig(t *testing.T) {
	path := "../../../examples/exampleconf/.arc/config"
	localCfg, err := loadLocalConfigFromPath(path)
	if err != nil {
		t.Error(err)
	}

	expected := LocalConfig{
		Host: "demo",
		Path: path,
		Resources: []Resource{
			{
				Name:          "comment",
				BelongsTo:     []Relation{{Target: "post"}},
				BelongsToName: "parent_post",
				HasMany: []Relation{
					{Target: "vote", Path: "comments/:id/likes"},
				},
			},
			{
				Name:      "post",
				Path:      "posts",
				BelongsTo: []Relation{{Target: "user"}},
				HasMany:   []Relation{{Target: "comment"}},
			},
			{
				Name: "user",
				HasMany: []Relation{
					{Target: "post"}, {Target: "album"}, {Target: "todo"},
				},
				HasOne: []Relation{{Target: "profile"}},
			},
		},
	}

	if !localConfigsEqual(localCfg, &expected) {
		t.Errorf(
			"Local config is wrong; got %v, expected %v",
			localCfg,
			expected,
		)
	}
}

func TestSaveAndLoadLocalConfig(t *testing.T) {
	expected := LocalConfig{
		Host: "My Host",
		URL:  "My URL",
		Resources: []Resource{
			{
				Name:      "comment",
				Path:      "My Path",
				UID:       "My UID",
				BelongsTo: []Relation{{Target: "post", Name: "parent"}},
				HasOne:    []Relation{{Target: "signature"}},
				HasMany: []Relation{
					{Target: "vote", Path: "My Relation Path"},
				},
				HasOneName: "My Has One Name",
			},
		},
	}

	var buffer bytes.Buffer
	err := expected.saveToWriter(&buffer)
	if err != nil {
		t.Error(err)
	}

	newLocalCfg, err := loadLocalConfigFromBytes(buffer.Bytes())
	if err != nil {
		t.Error(err)
	}

	if !localConfigsEqual(&expected, newLocalCfg) {
		t.Errorf(
			"Local config is wrong; got %v, expected %v",
			newLocalCfg,
			expected,
		)
	}
}

func TestChangeSaveAndLoadLocalConfig(t *testing.T) {
	initial := LocalConfig{
		Host: "My Host",
		Resources: []Resource{
			{
				Name:      "comment",
				BelongsTo: []Relation{{Target: "post"}},
			},
		},
	}
	var buffer bytes.Buffer
	err := initial.saveToWriter(&buffer)
	if err != nil {
		t.Error(err)
	}

	// Load
	loaded, err := loadLocalConfigFromBytes(buffer.Bytes())
	if err != nil {
		t.Error(err)
	}

	// Change
	loaded.Resources[0].UID = "uuid"

	// Save again
	buffer.Reset()
	err = loaded.saveToWriter(&buffer)
	if err != nil {
		t.Error(err)
	}

	// Load again and check for the uid
	reloaded, err := loadLocalConfigFromBytes(buffer.Bytes())
	if err != nil {
		t.Error(err)
	}

	if reloaded.Resources[0].UID != "uuid" {
		t.Errorf(
			"Read wrong uid '%s', expected 'uuid'",
			reloaded.Resources[0].UID,
		)
	}
}

func TestMissingApiSection(t *testing.T) {
	_, err := loadLocalConfigFromBytes([]byte("[resource:post]\n"))
	if err == nil {
		t.Error("Expected an error for a config without an api section")
	}
}

func TestDottedKeyImpliesTarget(t *testing.T) {
	data := []byte(
		"[api]\n" +
			"url = http://localhost\n" +
			"[resource:comment]\n" +
			"has_many.vote.name = likes\n",
	)
	localCfg, err := loadLocalConfigFromBytes(data)
	if err != nil {
		t.Error(err)
	}

	expected := []Relation{{Target: "vote", Name: "likes"}}
	if !relationsEqual(localCfg.Resources[0].HasMany, expected) {
		t.Errorf(
			"Got relations %v, expected %v",
			localCfg.Resources[0].HasMany,
			expected,
		)
	}
}
