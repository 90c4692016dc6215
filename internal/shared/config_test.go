package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Path == "" {
		t.Error("default database path should not be empty")
	}
	if config.Database.MaxOpenConns <= 0 {
		t.Errorf("expected positive max_open_conns, got %d", config.Database.MaxOpenConns)
	}
	if config.Log.Level == "" {
		t.Error("default log level should not be empty")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")

		content := `
[database]
path = "library.db"
max_open_conns = 8
max_idle_conns = 4

[log]
level = "debug"
path = "shell.log"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "library.db" {
			t.Errorf("expected path library.db, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 8 {
			t.Errorf("expected 8 max open conns, got %d", config.Database.MaxOpenConns)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected level debug, got %s", config.Log.Level)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[database\npath = "), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed config file")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("failed to create config file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("created config file should parse: %v", err)
	}
	if config.Database.Path == "" {
		t.Error("created config should carry a database path")
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when config file already exists")
	}
}
