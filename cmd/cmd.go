// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Log in, register, and inspect the current session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate locally first, then against the remote API",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
					&cli.StringArg{Name: "password"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "demo",
						Usage: "List known demo accounts instead of logging in",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the session as JSON",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a local account",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
					&cli.StringArg{Name: "email"},
					&cli.StringArg{Name: "password"},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Clear the session and saved favourites",
				Action: r.AuthLogout,
			},
			{
				Name:  "whoami",
				Usage: "Show the active session",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the session as JSON",
					},
				},
				Action: r.AuthWhoami,
			},
		},
	}
}

// eventsCommand handles sports-data lookups
func eventsCommand(r *Runner) *cli.Command {
	leagueFlag := &cli.StringFlag{
		Name:    "league",
		Aliases: []string{"l"},
		Usage:   "League ID to query",
	}
	jsonFlag := &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}
	prettyFlag := &cli.BoolFlag{
		Name:  "pretty",
		Usage: "Pretty-print output",
	}

	return &cli.Command{
		Name:    "events",
		Aliases: []string{"ev"},
		Usage:   "Browse league events",
		Commands: []*cli.Command{
			{
				Name:  "upcoming",
				Usage: "List the season schedule for a league",
				Flags: []cli.Flag{
					leagueFlag,
					&cli.StringFlag{
						Name:    "season",
						Aliases: []string{"s"},
						Usage:   "Season to query, e.g. 2024-2025",
					},
					jsonFlag,
					prettyFlag,
				},
				Action: r.EventsUpcoming,
			},
			{
				Name:   "past",
				Usage:  "List recent results for a league",
				Flags:  []cli.Flag{leagueFlag, jsonFlag, prettyFlag},
				Action: r.EventsPast,
			},
			{
				Name:  "search",
				Usage: "Search events by name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags:  []cli.Flag{jsonFlag, prettyFlag},
				Action: r.EventsSearch,
			},
			{
				Name:  "lookup",
				Usage: "Show full details for one event",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{jsonFlag, prettyFlag},
				Action: r.EventsLookup,
			},
			{
				Name:  "team",
				Usage: "Show details for one team",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{jsonFlag, prettyFlag},
				Action: r.EventsTeam,
			},
		},
	}
}

// favCommand handles the persisted favourites set
func favCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fav",
		Usage: "Manage favourite events",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved favourites",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FavList,
			},
			{
				Name:  "add",
				Usage: "Save an event by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FavAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a saved event by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FavRemove,
			},
			{
				Name:   "clear",
				Usage:  "Remove all saved favourites",
				Action: r.FavClear,
			},
		},
	}
}

// themeCommand handles the persisted dark-mode preference
func themeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Show or change the colour theme",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the active theme",
				Action: r.ThemeShow,
			},
			{
				Name:   "toggle",
				Usage:  "Switch between light and dark",
				Action: r.ThemeToggle,
			},
			{
				Name:  "set",
				Usage: "Set the theme to light or dark",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "mode"},
				},
				Action: r.ThemeSet,
			},
		},
	}
}

// setupCommand initializes the configuration file and database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and local storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand launches the interactive browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse events interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "league",
				Aliases: []string{"l"},
				Usage:   "League ID to browse",
			},
			&cli.StringFlag{
				Name:    "season",
				Aliases: []string{"s"},
				Usage:   "Season to browse",
			},
		},
		Action: r.TUI,
	}
}
