// Package playlist implements the playlist engine: playlist creation,
// append-only song membership, and position-ordered listing.
//
// Positions are 1-based, gapless, and assigned at insertion time in append
// order. There is no reorder or removal operation, so positions never need
// renumbering.
package playlist

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/softsholm/cadenza/internal/models"
	"github.com/softsholm/cadenza/internal/shared"
)

// Engine performs playlist operations. It holds the process-wide database
// handle and no other state; every operation is a single transaction.
type Engine struct {
	db *sql.DB
}

// NewEngine creates a new [Engine] with the given database connection
func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// Create inserts a new playlist owned by userID and returns its id.
//
// Fails with [shared.ErrEmptyName] when name is blank and with
// [shared.ErrNotFound] when userID references no user. Playlist names are
// not unique; two playlists may share a name.
func (e *Engine) Create(ctx context.Context, userID int64, name, description string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("create playlist: %w", shared.ErrEmptyName)
	}

	var desc any = description
	if description == "" {
		desc = nil
	}

	result, err := e.db.ExecContext(ctx,
		"INSERT INTO playlists (name, description, user_id) VALUES (?, ?, ?)",
		name, desc, userID,
	)
	if err != nil {
		if shared.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("create playlist for user %d: %w", userID, shared.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to insert playlist: %w", shared.StorageError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new playlist id: %w", shared.StorageError(err))
	}

	return id, nil
}

// AddSong appends a song to a playlist, assigning the next position.
//
// Fails with [shared.ErrDuplicateEntry] when the song is already in the
// playlist (checked before any position computation) and with
// [shared.ErrNotFound] when the playlist or song does not exist.
//
// The duplicate check, the position computation, and the insert run in one
// transaction, so the assigned position is MAX(position)+1 as of commit
// time even with concurrent appenders; the UNIQUE (playlist_id, position)
// index rejects a writer that lost the race instead of letting it punch a
// hole in the ordering.
func (e *Engine) AddSong(ctx context.Context, playlistID, songID int64) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", shared.StorageError(err))
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM playlist_songs WHERE playlist_id = ? AND song_id = ?)",
		playlistID, songID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check playlist entries: %w", shared.StorageError(err))
	}
	if exists {
		return fmt.Errorf("playlist %d, song %d: %w", playlistID, songID, shared.ErrDuplicateEntry)
	}

	var position int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_songs WHERE playlist_id = ?",
		playlistID,
	).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to compute next position: %w", shared.StorageError(err))
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO playlist_songs (playlist_id, song_id, position) VALUES (?, ?, ?)",
		playlistID, songID, position,
	)
	if err != nil {
		switch {
		case shared.IsForeignKeyViolation(err):
			return fmt.Errorf("playlist %d, song %d: %w", playlistID, songID, shared.ErrNotFound)
		case shared.IsUniqueViolation(err):
			return fmt.Errorf("playlist %d, song %d: %w", playlistID, songID, shared.ErrDuplicateEntry)
		default:
			return fmt.Errorf("failed to insert playlist entry: %w", shared.StorageError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit playlist entry: %w", shared.StorageError(err))
	}

	return nil
}

// Get retrieves a single playlist view by id, failing with
// [shared.ErrNotFound] when it does not exist.
func (e *Engine) Get(ctx context.Context, playlistID int64) (models.PlaylistView, error) {
	var view models.PlaylistView
	err := e.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, COALESCE(p.description, ''), p.user_id, p.created_at, COUNT(ps.id)
		FROM playlists p
		LEFT JOIN playlist_songs ps ON ps.playlist_id = p.id
		WHERE p.id = ?
		GROUP BY p.id`,
		playlistID,
	).Scan(&view.ID, &view.Name, &view.Description, &view.UserID, &view.CreatedAt, &view.SongCount)
	if err == sql.ErrNoRows {
		return models.PlaylistView{}, fmt.Errorf("playlist %d: %w", playlistID, shared.ErrNotFound)
	}
	if err != nil {
		return models.PlaylistView{}, fmt.Errorf("failed to query playlist: %w", shared.StorageError(err))
	}

	return view, nil
}

// ListUserPlaylists returns the playlists owned by one user, each with its
// song count. No ordering is guaranteed beyond the store default.
func (e *Engine) ListUserPlaylists(ctx context.Context, userID int64) ([]models.PlaylistView, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT p.id, p.name, COALESCE(p.description, ''), p.user_id, p.created_at, COUNT(ps.id)
		FROM playlists p
		LEFT JOIN playlist_songs ps ON ps.playlist_id = p.id
		WHERE p.user_id = ?
		GROUP BY p.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", shared.StorageError(err))
	}
	defer rows.Close()

	var playlists []models.PlaylistView
	for rows.Next() {
		var view models.PlaylistView
		err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.UserID, &view.CreatedAt, &view.SongCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", shared.StorageError(err))
		}
		playlists = append(playlists, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", shared.StorageError(err))
	}

	return playlists, nil
}

// ListSongs returns a playlist's songs ordered by ascending position.
//
// The position ordering is the one hard guarantee this system makes to its
// callers.
func (e *Engine) ListSongs(ctx context.Context, playlistID int64) ([]models.PlaylistSongView, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT s.id, s.title, a.name, al.title, g.name,
		       COALESCE(s.duration, 0),
		       COALESCE(s.file_path, ''),
		       ps.position
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		JOIN artists a ON a.id = s.artist_id
		JOIN albums al ON al.id = s.album_id
		LEFT JOIN genres g ON g.id = s.genre_id
		WHERE ps.playlist_id = ?
		ORDER BY ps.position ASC`,
		playlistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist songs: %w", shared.StorageError(err))
	}
	defer rows.Close()

	var songs []models.PlaylistSongView
	for rows.Next() {
		var (
			song  models.PlaylistSongView
			genre sql.NullString
		)
		err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Album, &genre, &song.Duration, &song.FilePath, &song.Position)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist song: %w", shared.StorageError(err))
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
