package arclib

import (
	"fmt"
	"net"
	"net/http"

	"github.com/activerest/cli/internal/demoapi"
	"github.com/activerest/cli/pkg/placeholder"
	"github.com/pterm/pterm"
)

type DemoCommandArguments struct {
	Port int
}

// DemoCommand serves the bundled in-memory demo API until interrupted.
func DemoCommand(arguments *DemoCommandArguments) error {
	address := fmt.Sprintf(":%d", arguments.Port)
	url := fmt.Sprintf("http://localhost:%d", arguments.Port)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Serving the demo API on %s\n", url)
	pterm.Info.Println("Try 'arc init' in another terminal, then " +
		"'arc list posts'. Ctrl+C stops the server.")

	// Serve blocks, so the seeded inventory is reported from the side,
	// through the bindings, once the port answers.
	go func() {
		api, err := placeholder.New(url, nil)
		if err != nil {
			return
		}
		posts, err := api.Posts.All()
		if err != nil {
			return
		}
		users, err := api.Users.All()
		if err != nil {
			return
		}
		pterm.Info.Printf(
			"Seeded with %d posts by %d users, plus comments, albums, "+
				"photos and todos\n", len(posts), len(users),
		)
	}()

	return http.Serve(listener, demoapi.NewHandler().Routes())
}
