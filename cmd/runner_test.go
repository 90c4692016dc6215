package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/softsholm/cadenza/internal/shared"
	tu "github.com/softsholm/cadenza/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("register builds all top-level commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for _, c := range commands {
			names[c.Name] = true
		}
		for _, want := range []string{"setup", "shell", "users", "catalog", "playlists"} {
			if !names[want] {
				t.Errorf("expected command %q to be registered", want)
			}
		}
	})
}

func TestWriteHelpers(t *testing.T) {
	t.Run("writeJSON compact", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]int{"count": 3}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := output.String(); got != "{\"count\":3}\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("writeJSON pretty", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]int{"count": 3}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if !strings.Contains(output.String(), "  \"count\": 3") {
			t.Errorf("expected indented output, got %q", output.String())
		}
	})

	t.Run("writePlain and writePlainln", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writePlain("%d songs", 2)
		runner.writePlainln("done")

		if got := output.String(); got != "2 songs\ndone\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("writePlainHeader includes title", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writePlainHeader("Artists")
		if !strings.Contains(output.String(), "Artists") {
			t.Errorf("expected header to include title, got %q", output.String())
		}
	})
}

// runApp executes the full command tree against a runner the way main does.
func runApp(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:     "cadenza",
		Commands: runner.register(),
	}
	return app.Run(context.Background(), append([]string{"cadenza"}, args...))
}

func testRunner(t *testing.T, dbPath string) (*Runner, *bytes.Buffer) {
	t.Helper()
	config := shared.DefaultConfig()
	config.Database.Path = dbPath
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: shared.NewLogger(nil),
		Output: output,
	})
	return runner, output
}

func TestSetupDatabase(t *testing.T) {
	dir := t.TempDir()
	cwd := tu.MustGetwd(t)
	tu.MustChdir(t, dir)
	defer tu.MustChdir(t, cwd)

	runner, _ := testRunner(t, filepath.Join(dir, "test.db"))
	if err := runApp(t, runner, "setup", "--config", filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	tu.AssertFileExists(t, filepath.Join(dir, "config.toml"))

	// setup reloads config from the created file, so the database lands
	// at the template's default path relative to the working directory
	tu.AssertFileExists(t, filepath.Join(dir, "cadenza.db"))
}

func TestAccountAndPlaylistCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	// migrate an empty database directly, bypassing config handling
	db, err := shared.NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	artistID := tu.InsertArtist(t, db, "Nina Simone", "")
	albumID := tu.InsertAlbum(t, db, "Pastel Blues", 1965, artistID)
	tu.InsertSong(t, db, "Sinnerman", 630, artistID, albumID, 0)
	db.Close()

	runner, output := testRunner(t, dbPath)

	if err := runApp(t, runner, "users", "register", "-u", "nina", "-e", "nina@example.com", "-p", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !strings.Contains(output.String(), "account created: nina") {
		t.Errorf("unexpected register output: %q", output.String())
	}

	output.Reset()
	if err := runApp(t, runner, "users", "login", "-u", "nina", "-p", "secret", "--json"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	var profile struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(output.Bytes(), &profile); err != nil {
		t.Fatalf("login output is not JSON: %v", err)
	}
	if profile.Username != "nina" {
		t.Errorf("expected username nina, got %q", profile.Username)
	}

	if err := runApp(t, runner, "users", "login", "-u", "nina", "-p", "wrong"); err == nil {
		t.Error("expected login with wrong password to fail")
	}

	output.Reset()
	if err := runApp(t, runner, "playlists", "create", "--user", "1", "--name", "Late Night"); err != nil {
		t.Fatalf("playlist create failed: %v", err)
	}
	if !strings.Contains(output.String(), "playlist created: Late Night") {
		t.Errorf("unexpected create output: %q", output.String())
	}

	if err := runApp(t, runner, "playlists", "add", "--playlist", "1", "--song", "1"); err != nil {
		t.Fatalf("playlist add failed: %v", err)
	}
	if err := runApp(t, runner, "playlists", "add", "--playlist", "1", "--song", "1"); err == nil {
		t.Error("expected duplicate add to fail")
	}

	output.Reset()
	if err := runApp(t, runner, "playlists", "show", "--playlist", "1"); err != nil {
		t.Fatalf("playlist show failed: %v", err)
	}
	if !strings.Contains(output.String(), "Sinnerman") {
		t.Errorf("expected playlist to contain the song, got %q", output.String())
	}

	output.Reset()
	if err := runApp(t, runner, "catalog", "search", "sinner", "--json"); err != nil {
		t.Fatalf("catalog search failed: %v", err)
	}
	if !strings.Contains(output.String(), "Sinnerman") {
		t.Errorf("expected search to find the song, got %q", output.String())
	}
}
