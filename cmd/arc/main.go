package arc

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/activerest/cli/internal/arclib"
	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/internal/arclib/explorer"
	"github.com/activerest/cli/pkg/active"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/urfave/cli/v2"
)

// getDeclaredResources loads the configuration and turns its manifest
// into live declared resources, honoring the global flag overrides.
func getDeclaredResources(c *cli.Context) (
	*config.Config, map[string]*active.Resource, error,
) {
	cfg, err := config.LoadFromPaths(
		c.String("root-config"), c.String("config"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %s", err)
	}
	baseURL, token, err := arclib.GetHostAndToken(
		&cfg, c.String("host"), c.String("token"),
	)
	if err != nil {
		return nil, nil, err
	}
	session, err := arclib.GetSession(token, c.String("cacert"))
	if err != nil {
		return nil, nil, err
	}
	resources, err := arclib.DeclareResources(&cfg, baseURL, session)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, resources, nil
}

func Main() {
	errorColor := color.New(color.FgRed).SprintfFunc()
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println("ARC client, version=" + c.App.Version)
	}
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "root-config",
			Usage: "Root configuration from `FILE`",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load configuration from `FILE`",
		},
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "The api token to use",
			EnvVars: []string{"ARC_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "The API host, a root-config host name or a url",
			EnvVars: []string{"ARC_HOST"},
		},
		&cli.StringFlag{
			Name:    "cacert",
			Usage:   "Path to CA certificate bundle file",
			EnvVars: []string{"ARC_CACERT"},
		},
	}
	app := &cli.App{
		Version:                arclib.Version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "arc init [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "The API url the project's resources live under",
					},
				},
				Action: func(c *cli.Context) error {
					arguments := arclib.InitCommandArguments{
						Host:  c.String("host"),
						URL:   c.String("url"),
						Token: c.String("token"),
					}
					err := arclib.InitCommand(&arguments)
					if err != nil {
						if errors.Is(err, promptui.ErrInterrupt) {
							return cli.Exit("", 1)
						}
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "arc add [options] [name]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name for the new resource",
					},
					&cli.StringFlag{
						Name: "path",
						Usage: "Collection path, defaults to the " +
							"pluralized name",
					},
					&cli.StringFlag{
						Name:  "uid",
						Usage: "Identifier field, defaults to 'id'",
					},
					&cli.StringSliceFlag{
						Name:  "belongs-to",
						Usage: "Owner target, repeatable",
					},
					&cli.StringSliceFlag{
						Name:  "has-one",
						Usage: "Singular child target, repeatable",
					},
					&cli.StringSliceFlag{
						Name:  "has-many",
						Usage: "Collection child target, repeatable",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadFromPaths(
						c.String("root-config"), c.String("config"),
					)
					if err != nil {
						return cli.Exit(errorColor(
							"Error loading configuration: %s", err,
						), 1)
					}

					name := c.String("name")
					if name == "" {
						name = c.Args().First()
					}
					if name == "" {
						err = arclib.AddCommandInteractive(&cfg)
						if err != nil {
							if errors.Is(err, promptui.ErrInterrupt) {
								return cli.Exit("", 1)
							}
							return cli.Exit(errorColor(fmt.Sprint(err)), 1)
						}
						return nil
					}

					arguments := arclib.AddCommandArguments{
						Name:      name,
						Path:      c.String("path"),
						UID:       c.String("uid"),
						BelongsTo: c.StringSlice("belongs-to"),
						HasOne:    c.StringSlice("has-one"),
						HasMany:   c.StringSlice("has-many"),
					}
					err = arclib.AddCommand(&cfg, &arguments)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "arc status [resource...]",
				Action: func(c *cli.Context) error {
					cfg, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.StatusCommandArguments{
						ResourceNames: c.Args().Slice(),
					}
					err = arclib.StatusCommand(cfg, resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "arc list [options] resource",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "Exact-match `KEY=VALUE` filter, repeatable",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit(
							errorColor("Please provide one resource"), 1,
						)
					}
					_, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.ListCommandArguments{
						ResourceName: c.Args().First(),
						Filters:      c.StringSlice("filter"),
					}
					err = arclib.ListCommand(resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "arc get resource id",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 2 {
						return cli.Exit(errorColor(
							"Please provide a resource and an id",
						), 1)
					}
					_, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.GetCommandArguments{
						ResourceName: c.Args().Get(0),
						ID:           c.Args().Get(1),
					}
					err = arclib.GetCommand(resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "arc create resource [field=value...]",
				Action: func(c *cli.Context) error {
					if c.Args().Len() < 1 {
						return cli.Exit(
							errorColor("Please provide one resource"), 1,
						)
					}
					_, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.CreateCommandArguments{
						ResourceName: c.Args().First(),
						Fields:       c.Args().Tail(),
					}
					err = arclib.CreateCommand(resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "edit",
				Usage: "arc edit resource id [field=value...]",
				Action: func(c *cli.Context) error {
					if c.Args().Len() < 2 {
						return cli.Exit(errorColor(
							"Please provide a resource and an id",
						), 1)
					}
					_, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.EditCommandArguments{
						ResourceName: c.Args().Get(0),
						ID:           c.Args().Get(1),
						Fields:       c.Args().Slice()[2:],
					}
					err = arclib.EditCommand(resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "arc delete [options] resource id",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Delete without asking for confirmation",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 2 {
						return cli.Exit(errorColor(
							"Please provide a resource and an id",
						), 1)
					}
					_, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.DeleteCommandArguments{
						ResourceName: c.Args().Get(0),
						ID:           c.Args().Get(1),
						Force:        c.Bool("force"),
					}
					err = arclib.DeleteCommand(resources, &arguments)
					if err != nil {
						if errors.Is(err, promptui.ErrInterrupt) {
							return cli.Exit("", 1)
						}
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "rel",
				Usage: "arc rel [options] resource id association",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "set",
						Usage: "Replace the association with this `JSON` object",
					},
					&cli.BoolFlag{
						Name:  "unset",
						Usage: "Delete the associated record",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 3 {
						return cli.Exit(errorColor(
							"Please provide a resource, an id and an " +
								"association name",
						), 1)
					}
					_, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					arguments := arclib.RelCommandArguments{
						ResourceName: c.Args().Get(0),
						ID:           c.Args().Get(1),
						Association:  c.Args().Get(2),
						Set:          c.String("set"),
						Unset:        c.Bool("unset"),
					}
					err = arclib.RelCommand(resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "arc dump [options] [resource...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the export into `DIR`",
						Value:   "export",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "How many parallel workers to use (max 20)",
						Value:   5,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, resources, err := getDeclaredResources(c)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					workers := c.Int("workers")
					if workers > 20 {
						workers = 20
					}
					arguments := arclib.DumpCommandArguments{
						OutputDir:     c.String("output"),
						Workers:       workers,
						ResourceNames: c.Args().Slice(),
					}
					err = arclib.DumpCommand(cfg, resources, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "demo",
				Usage: "arc demo [options]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "Port to serve the demo API on",
						Value:   4280,
					},
				},
				Action: func(c *cli.Context) error {
					arguments := arclib.DemoCommandArguments{
						Port: c.Int("port"),
					}
					err := arclib.DemoCommand(&arguments)
					if err != nil {
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					return nil
				},
			},
			explorer.Cmd(),
			{
				Name:  "update",
				Usage: "Update the `arc` application if there is a newer version",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "check",
						Aliases: []string{"c"},
						Usage:   "Check if there is a new version of arc",
					},
					&cli.BoolFlag{
						Name:    "no-interactive",
						Aliases: []string{"ni"},
						Usage:   "Update if there is a newer version without prompt",
					},
					&cli.BoolFlag{
						Name:    "debug",
						Aliases: []string{"d"},
						Usage:   "Enable debug logs for the update process",
					},
				},
				Action: func(c *cli.Context) error {
					arguments := arclib.UpdateCommandArguments{
						Version:       c.App.Version,
						Check:         c.Bool("check"),
						NoInteractive: c.Bool("no-interactive"),
						Debug:         c.Bool("debug"),
					}
					err := arclib.UpdateCommand(arguments)
					if err != nil {
						if errors.Is(err, promptui.ErrInterrupt) {
							return cli.Exit("", 1)
						}
						return cli.Exit(errorColor(fmt.Sprint(err)), 1)
					}
					return nil
				},
			},
		},
		Flags: flags,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
