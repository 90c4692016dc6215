// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}

// shellCommand launches the interactive terminal shell.
func shellCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Aliases: []string{"tui"},
		Usage:   "Launch the interactive catalog and playlist shell",
		Action:  r.Shell,
	}
}

// usersCommand handles account operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "users",
		Aliases: []string{"u"},
		Usage:   "Account registration and sign in",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Unique username for the account",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Unique email for the account",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.UsersRegister,
			},
			{
				Name:  "login",
				Usage: "Verify credentials and print the account profile",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the profile as JSON",
					},
				},
				Action: r.UsersLogin,
			},
		},
	}
}

// catalogCommand handles read-only catalog browsing
func catalogCommand(r *Runner) *cli.Command {
	jsonFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}

	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Browse and search the music catalog",
		Commands: []*cli.Command{
			{
				Name:  "songs",
				Usage: "List songs, optionally narrowed to an artist or genre",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "artist",
						Usage: "Only songs by this artist id",
					},
					&cli.IntFlag{
						Name:  "genre",
						Usage: "Only songs in this genre id",
					},
				}, jsonFlags...),
				Action: r.CatalogSongs,
			},
			{
				Name:  "search",
				Usage: "Search songs by title, artist, or album",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "term",
					},
				},
				Flags:  jsonFlags,
				Action: r.CatalogSearch,
			},
			{
				Name:   "artists",
				Usage:  "List all artists",
				Flags:  jsonFlags,
				Action: r.CatalogArtists,
			},
			{
				Name:   "genres",
				Usage:  "List all genres",
				Flags:  jsonFlags,
				Action: r.CatalogGenres,
			},
		},
	}
}

// playlistsCommand handles playlist operations for a given account
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Create playlists and append songs",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create an empty playlist",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "user",
						Usage:    "Owning user id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Playlist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Optional description",
					},
				},
				Action: r.PlaylistsCreate,
			},
			{
				Name:  "add",
				Usage: "Append a song to the end of a playlist",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "playlist",
						Usage:    "Playlist id",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "song",
						Usage:    "Song id",
						Required: true,
					},
				},
				Action: r.PlaylistsAdd,
			},
			{
				Name:  "list",
				Usage: "List a user's playlists",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "user",
						Usage:    "Owning user id",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistsList,
			},
			{
				Name:  "show",
				Usage: "Show a playlist and its songs in order",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "playlist",
						Usage:    "Playlist id",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistsShow,
			},
		},
	}
}
