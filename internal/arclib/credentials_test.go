package arclib

import (
	"testing"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/assert"
)

func getCredentialsConfig() config.Config {
	return config.Config{
		Root: &config.RootConfig{
			Hosts: []config.Host{
				{
					Name:  "demo",
					URL:   "http://demo.example",
					Token: "DEMO_TOKEN",
				},
				{
					Name:  "prod",
					URL:   "http://prod.example",
					Token: "PROD_TOKEN",
				},
			},
		},
		Local: &config.LocalConfig{Host: "demo"},
	}
}

func TestGetHostAndTokenFromActiveHost(t *testing.T) {
	cfg := getCredentialsConfig()

	baseURL, token, err := GetHostAndToken(&cfg, "", "")
	assert.NoError(t, err)
	assert.Equal(t, baseURL, "http://demo.example")
	assert.Equal(t, token, "DEMO_TOKEN")
}

func TestGetHostAndTokenHostFlagSelectsSection(t *testing.T) {
	cfg := getCredentialsConfig()

	baseURL, token, err := GetHostAndToken(&cfg, "prod", "")
	assert.NoError(t, err)
	assert.Equal(t, baseURL, "http://prod.example")
	assert.Equal(t, token, "PROD_TOKEN")
}

func TestGetHostAndTokenVerbatimHost(t *testing.T) {
	cfg := getCredentialsConfig()

	// An unknown host is taken to be the base URL itself and carries no
	// token of its own.
	baseURL, token, err := GetHostAndToken(
		&cfg, "http://elsewhere.example", "",
	)
	assert.NoError(t, err)
	assert.Equal(t, baseURL, "http://elsewhere.example")
	assert.Equal(t, token, "")
}

func TestGetHostAndTokenLocalURLWins(t *testing.T) {
	cfg := getCredentialsConfig()
	cfg.Local.URL = "http://local.example"

	baseURL, token, err := GetHostAndToken(&cfg, "", "")
	assert.NoError(t, err)
	assert.Equal(t, baseURL, "http://local.example")
	// The active host still lends its token
	assert.Equal(t, token, "DEMO_TOKEN")
}

func TestGetHostAndTokenFlagTokenWins(t *testing.T) {
	cfg := getCredentialsConfig()

	_, token, err := GetHostAndToken(&cfg, "", "FLAG_TOKEN")
	assert.NoError(t, err)
	assert.Equal(t, token, "FLAG_TOKEN")
}

func TestGetHostAndTokenNoURLFails(t *testing.T) {
	cfg := config.Config{Local: &config.LocalConfig{Host: "nowhere"}}

	_, _, err := GetHostAndToken(&cfg, "", "")
	if err == nil {
		t.Error("Expected an error when no url can be found")
	}
}

func TestGetSessionBearerHeader(t *testing.T) {
	session, err := GetSession("SECRET", "")
	assert.NoError(t, err)
	assert.Equal(t, session.Headers["Authorization"], "Bearer SECRET")

	session, err = GetSession("", "")
	assert.NoError(t, err)
	if session.Headers != nil {
		t.Errorf("Got headers %v, expected none", session.Headers)
	}
}

func TestGetClientRejectsBadBundle(t *testing.T) {
	_, err := GetClient("/does/not/exist.pem")
	if err == nil {
		t.Error("Expected an error for a missing CA bundle")
	}
}
