// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"os"
	"testing"

	"github.com/softsholm/cadenza/internal/shared"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
//
// The pool is capped at one connection so every statement sees the same
// in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	shared.ConfigureDatabase(db, 1, 1)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// Catalog fixture helpers. The runtime has no catalog write path (seeding
// is out of scope), so tests insert rows directly.

func InsertArtist(t *testing.T, db *sql.DB, name, bio string) int64 {
	t.Helper()
	var b any = bio
	if bio == "" {
		b = nil
	}
	result, err := db.Exec("INSERT INTO artists (name, bio) VALUES (?, ?)", name, b)
	if err != nil {
		t.Fatalf("failed to insert artist %s: %v", name, err)
	}
	return lastID(t, result)
}

func InsertAlbum(t *testing.T, db *sql.DB, title string, releaseYear int, artistID int64) int64 {
	t.Helper()
	var year any = releaseYear
	if releaseYear == 0 {
		year = nil
	}
	result, err := db.Exec("INSERT INTO albums (title, release_year, artist_id) VALUES (?, ?, ?)", title, year, artistID)
	if err != nil {
		t.Fatalf("failed to insert album %s: %v", title, err)
	}
	return lastID(t, result)
}

func InsertGenre(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO genres (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to insert genre %s: %v", name, err)
	}
	return lastID(t, result)
}

// InsertSong inserts a song row. A genreID of 0 stores a NULL genre
// reference; a duration of 0 stores NULL.
func InsertSong(t *testing.T, db *sql.DB, title string, duration float64, artistID, albumID, genreID int64) int64 {
	t.Helper()
	var genre any = genreID
	if genreID == 0 {
		genre = nil
	}
	var dur any = duration
	if duration == 0 {
		dur = nil
	}
	result, err := db.Exec(
		"INSERT INTO songs (title, duration, artist_id, album_id, genre_id) VALUES (?, ?, ?, ?, ?)",
		title, dur, artistID, albumID, genre,
	)
	if err != nil {
		t.Fatalf("failed to insert song %s: %v", title, err)
	}
	return lastID(t, result)
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}

func lastID(t *testing.T, result sql.Result) int64 {
	t.Helper()
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read insert id: %v", err)
	}
	return id
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
