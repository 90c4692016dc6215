package shared

import (
	"database/sql"
	"testing"
)

func newTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	ConfigureDatabase(db, 1, 1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("failed to inspect schema: %v", err)
	}
	return true
}

func TestRunMigrations(t *testing.T) {
	db := newTestDatabase(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, table := range []string{"users", "artists", "albums", "genres", "songs", "playlists", "playlist_songs"} {
		if !tableExists(t, db, table) {
			t.Errorf("expected table %s to exist after migration", table)
		}
	}

	var version int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), -1) FROM schema_migrations").Scan(&version); err != nil {
		t.Fatalf("failed to read schema_migrations: %v", err)
	}
	if version != 0 {
		t.Errorf("expected recorded version 0, got %d", version)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := newTestDatabase(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run should be a no-op: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("failed to count applied migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 recorded migration, got %d", count)
	}
}

func TestRollbackMigration(t *testing.T) {
	db := newTestDatabase(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := RollbackMigration(db); err != nil {
		t.Fatalf("failed to rollback: %v", err)
	}

	if tableExists(t, db, "playlist_songs") {
		t.Error("expected playlist_songs to be dropped after rollback")
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("failed to count applied migrations: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no recorded migrations after rollback, got %d", count)
	}
}

func TestSchemaConstraints(t *testing.T) {
	db := newTestDatabase(t)
	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Run("genre names unique", func(t *testing.T) {
		if _, err := db.Exec("INSERT INTO genres (name) VALUES ('Jazz')"); err != nil {
			t.Fatalf("failed to insert genre: %v", err)
		}
		_, err := db.Exec("INSERT INTO genres (name) VALUES ('Jazz')")
		if !IsUniqueViolation(err) {
			t.Errorf("expected unique violation, got %v", err)
		}
	})

	t.Run("songs require an existing artist", func(t *testing.T) {
		_, err := db.Exec("INSERT INTO songs (title, artist_id, album_id) VALUES ('Ghost', 42, 42)")
		if !IsForeignKeyViolation(err) {
			t.Errorf("expected foreign key violation, got %v", err)
		}
	})
}

func TestRollbackMigrationNoApplied(t *testing.T) {
	db := newTestDatabase(t)

	// schema_migrations does not exist yet either; the rollback should
	// fail cleanly rather than panic.
	if err := RollbackMigration(db); err == nil {
		t.Error("expected error when nothing has been applied")
	}
}
