// Package catalog provides read-only, denormalized views over the music
// catalog (songs, artists, genres).
//
// Every query joins songs to artists and albums, with a left join to
// genres; a song without a genre reference surfaces [models.UnknownGenre].
// Results carry no ordering guarantee beyond what each query explicitly
// requests.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/softsholm/cadenza/internal/models"
	"github.com/softsholm/cadenza/internal/shared"
)

// songSelect is the shared denormalized projection for song queries.
const songSelect = `
	SELECT s.id, s.title, a.name, al.title, g.name,
	       COALESCE(s.duration, 0),
	       COALESCE(s.file_path, '')
	FROM songs s
	JOIN artists a ON a.id = s.artist_id
	JOIN albums al ON al.id = s.album_id
	LEFT JOIN genres g ON g.id = s.genre_id
`

// Access performs read-only catalog queries. It holds the process-wide
// database handle and no other state.
type Access struct {
	db *sql.DB
}

// NewAccess creates a new [Access] with the given database connection
func NewAccess(db *sql.DB) *Access {
	return &Access{db: db}
}

// ListSongs returns every song in the catalog.
func (a *Access) ListSongs(ctx context.Context) ([]models.SongView, error) {
	rows, err := a.db.QueryContext(ctx, songSelect)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", shared.StorageError(err))
	}
	defer rows.Close()

	return scanSongs(rows)
}

// Search returns songs whose title, artist name, or album title contains
// term, case-insensitively.
//
// Rejecting empty or whitespace-only terms is the caller's responsibility;
// this method runs whatever it is given.
func (a *Access) Search(ctx context.Context, term string) ([]models.SongView, error) {
	pattern := "%" + term + "%"
	rows, err := a.db.QueryContext(ctx,
		songSelect+" WHERE s.title LIKE ? OR a.name LIKE ? OR al.title LIKE ?",
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search songs: %w", shared.StorageError(err))
	}
	defer rows.Close()

	return scanSongs(rows)
}

// SongsByArtist returns the songs belonging to one artist.
func (a *Access) SongsByArtist(ctx context.Context, artistID int64) ([]models.SongView, error) {
	rows, err := a.db.QueryContext(ctx, songSelect+" WHERE s.artist_id = ?", artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs by artist: %w", shared.StorageError(err))
	}
	defer rows.Close()

	return scanSongs(rows)
}

// SongsByGenre returns the songs referencing one genre.
func (a *Access) SongsByGenre(ctx context.Context, genreID int64) ([]models.SongView, error) {
	rows, err := a.db.QueryContext(ctx, songSelect+" WHERE s.genre_id = ?", genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs by genre: %w", shared.StorageError(err))
	}
	defer rows.Close()

	return scanSongs(rows)
}

// ListArtists returns every artist, ordered by name for stable display.
func (a *Access) ListArtists(ctx context.Context) ([]models.ArtistView, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, name, COALESCE(bio, '') FROM artists ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", shared.StorageError(err))
	}
	defer rows.Close()

	var artists []models.ArtistView
	for rows.Next() {
		var artist models.ArtistView
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", shared.StorageError(err))
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", shared.StorageError(err))
	}

	return artists, nil
}

// ListGenres returns every genre, ordered by name for stable display.
func (a *Access) ListGenres(ctx context.Context) ([]models.GenreView, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT id, name FROM genres ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", shared.StorageError(err))
	}
	defer rows.Close()

	var genres []models.GenreView
	for rows.Next() {
		var genre models.GenreView
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", shared.StorageError(err))
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", shared.StorageError(err))
	}

	return genres, nil
}

// scanSongs drains rows produced by a songSelect-based query.
func scanSongs(rows *sql.Rows) ([]models.SongView, error) {
	var songs []models.SongView
	for rows.Next() {
		var (
			song  models.SongView
			genre sql.NullString
		)
		err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Album, &genre, &song.Duration, &song.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", shared.StorageError(err))
		}
		song.Genre = models.UnknownGenre
		if genre.Valid {
			song.Genre = genre.String
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", shared.StorageError(err))
	}

	return songs, nil
}
