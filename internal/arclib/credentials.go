package arclib

import (
	"errors"

	"github.com/activerest/cli/internal/arclib/config"
)

/*
GetHostAndToken
Function for getting the *final* API base URL and token from a
combination of environment variables, flags and config files.

- 'cfg' is a 'config.Config' object that has already been loaded either
  based on the default configuration paths or ones that have been supplied
  by the user.

- 'host' is an override for the API host that the user has maybe provided
  either as a flag or an environment variable.

- 'token' is an override for the API token to be used that the user has
  maybe provided either as a flag or an environment variable.

The logic for retrieving the final base URL and token is:

1. If the host flag/env variable is provided, use it as a section *key* in
   the root configuration file. For example, if the user provides 'demo'
   and the root configuration file looks like this:

       [demo]
       url = http://localhost:4280

   Then the returned base URL will be 'http://localhost:4280'.

   If a matching host isn't found, the provided value is taken to be the
   base URL itself.

2. If the user didn't provide a host, an explicit 'url' key in the local
   api section wins; otherwise the "active host" is looked up in the root
   configuration through the local 'host' key and its url is used. When
   neither exists the lookup fails; run 'arc init' to write one.

3. If a token was provided by the user, simply return it.

4. If a token wasn't provided, use the matching or active host's token.
   Tokens are optional; against an open API both lookups may come up
   empty and the session simply carries no Authorization header.
*/
func GetHostAndToken(
	cfg *config.Config, host, token string,
) (string, string, error) {
	var baseURL string
	var selectedHost *config.Host
	if host != "" {
		found := cfg.FindHost(host)
		if found != nil {
			selectedHost = found
			baseURL = found.URL
		} else {
			baseURL = host
		}
	} else {
		selectedHost = cfg.GetActiveHost()
		baseURL = cfg.BaseURL()
	}

	if token == "" && selectedHost != nil {
		token = selectedHost.Token
	}

	if baseURL == "" {
		return "", "", errors.New(
			"could not find an API url, please inspect your .activerestrc " +
				"and .arc/config files or pass --host",
		)
	}
	return baseURL, token, nil
}
