package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/softsholm/cadenza/internal/playlist"
	"github.com/softsholm/cadenza/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistsCreate creates an empty playlist for a user.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	userID := int64(cmd.Int("user"))
	name := strings.TrimSpace(cmd.String("name"))
	description := strings.TrimSpace(cmd.String("description"))

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := playlist.NewEngine(db).Create(ctx, userID, name, description)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrEmptyName):
			return fmt.Errorf("create failed: playlist name cannot be empty")
		case errors.Is(err, shared.ErrNotFound):
			return fmt.Errorf("create failed: no user with id %d", userID)
		}
		return fmt.Errorf("create failed: %w", err)
	}

	r.logger.Info("playlist created", "id", id, "user", userID)
	r.writePlain("✓ playlist created: %s (id %d)\n", name, id)
	return nil
}

// PlaylistsAdd appends a song to the end of a playlist.
func (r *Runner) PlaylistsAdd(ctx context.Context, cmd *cli.Command) error {
	playlistID := int64(cmd.Int("playlist"))
	songID := int64(cmd.Int("song"))

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := playlist.NewEngine(db)
	if err := engine.AddSong(ctx, playlistID, songID); err != nil {
		switch {
		case errors.Is(err, shared.ErrDuplicateEntry):
			return fmt.Errorf("add failed: song %d is already in playlist %d", songID, playlistID)
		case errors.Is(err, shared.ErrNotFound):
			return fmt.Errorf("add failed: playlist or song does not exist")
		}
		return fmt.Errorf("add failed: %w", err)
	}

	r.writePlain("✓ song %d added to playlist %d\n", songID, playlistID)
	return nil
}

// PlaylistsList lists a user's playlists with song counts.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	userID := int64(cmd.Int("user"))

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists, err := playlist.NewEngine(db).ListUserPlaylists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	r.writePlainHeader(fmt.Sprintf("Playlists for user %d", userID))
	for _, pl := range playlists {
		line := fmt.Sprintf("%4d  %-30s  %d songs", pl.ID, pl.Name, pl.SongCount)
		if pl.Description != "" {
			line = fmt.Sprintf("%s  (%s)", line, pl.Description)
		}
		r.writePlain("%s\n", line)
	}
	return nil
}

// PlaylistsShow prints a playlist and its songs in position order.
func (r *Runner) PlaylistsShow(ctx context.Context, cmd *cli.Command) error {
	playlistID := int64(cmd.Int("playlist"))

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := playlist.NewEngine(db)
	pl, err := engine.Get(ctx, playlistID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("no playlist with id %d", playlistID)
		}
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	songs, err := engine.ListSongs(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("failed to load playlist songs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(struct {
			Playlist any `json:"playlist"`
			Songs    any `json:"songs"`
		}{pl, songs}, true)
	}

	r.writePlainHeader(pl.Name)
	if pl.Description != "" {
		r.writePlain("%s\n\n", pl.Description)
	}
	for _, song := range songs {
		r.writePlain("%3d.  %-30s  %-20s  %s\n",
			song.Position, song.Title, song.Artist, shared.FormatDuration(song.Duration))
	}
	r.writePlainln("%d songs", len(songs))
	return nil
}
