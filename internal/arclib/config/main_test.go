package config

import (
	"testing"

	"github.com/activerest/cli/pkg/assert"
)

func TestGetActiveHost(t *testing.T) {
	cfg := Config{
		Root: &RootConfig{
			Hosts: []Host{
				{Name: "aaa", URL: "http://aaa"},
				{Name: "bbb", URL: "http://bbb"},
			},
		},
		Local: &LocalConfig{
			Host: "aaa",
		},
	}

	activeHost := cfg.GetActiveHost()
	if activeHost != &cfg.Root.Hosts[0] {
		t.Errorf("Found wrong host '%v', expected '{aaa http://aaa}'",
			activeHost)
	}
}

func TestBaseURL(t *testing.T) {
	cfg := Config{
		Root: &RootConfig{
			Hosts: []Host{{Name: "demo", URL: "http://demo", Token: "SECRET"}},
		},
		Local: &LocalConfig{Host: "demo"},
	}
	assert.Equal(t, cfg.BaseURL(), "http://demo")
	assert.Equal(t, cfg.Token(), "SECRET")

	// An explicit url wins over the host lookup
	cfg.Local.URL = "http://elsewhere"
	assert.Equal(t, cfg.BaseURL(), "http://elsewhere")
}

func TestFind(t *testing.T) {
	cfg := Config{
		Local: &LocalConfig{
			Resources: []Resource{
				{Name: "comment"},
				{Name: "post"},
			},
		},
	}

	resource := cfg.FindResource("comment")
	if resource != &cfg.Local.Resources[0] {
		t.Errorf(
			"Got wrong resource %v, expected %v",
			*resource,
			cfg.Local.Resources[0],
		)
	}

	resource = cfg.FindResource("post")
	if resource != &cfg.Local.Resources[1] {
		t.Errorf(
			"Got wrong resource %v, expected %v",
			*resource,
			cfg.Local.Resources[1],
		)
	}

	resource = cfg.FindResource("something else")
	if resource != nil {
		t.Errorf("Got wrong resource %v, expected nil", *resource)
	}
}

func TestRemoveResource(t *testing.T) {
	cfg := Config{
		Local: &LocalConfig{
			Resources: []Resource{
				{Name: "comment"},
				{Name: "post"},
				{Name: "user"},
			},
		},
	}

	cfg.RemoveResource(cfg.Local.Resources[1])
	if cfg.Local.Resources[1].Name == "post" {
		t.Errorf(
			"This resource should have been removed",
		)
	}
	assert.Equal(t, len(cfg.Local.Resources), 2)

}
