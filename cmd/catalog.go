package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/softsholm/cadenza/internal/catalog"
	"github.com/softsholm/cadenza/internal/models"
	"github.com/softsholm/cadenza/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogSongs lists songs, optionally narrowed to an artist or genre.
func (r *Runner) CatalogSongs(ctx context.Context, cmd *cli.Command) error {
	artistID := int64(cmd.Int("artist"))
	genreID := int64(cmd.Int("genre"))

	if artistID > 0 && genreID > 0 {
		return fmt.Errorf("%w: cannot filter by both --artist and --genre", shared.ErrInvalidArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	access := catalog.NewAccess(db)

	var songs []models.SongView
	switch {
	case artistID > 0:
		songs, err = access.SongsByArtist(ctx, artistID)
	case genreID > 0:
		songs, err = access.SongsByGenre(ctx, genreID)
	default:
		songs, err = access.ListSongs(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writeSongTable(songs)
	return nil
}

// CatalogSearch searches songs by title, artist, or album.
func (r *Runner) CatalogSearch(ctx context.Context, cmd *cli.Command) error {
	term := strings.TrimSpace(cmd.StringArg("term"))
	if term == "" {
		return fmt.Errorf("%w: a search term is required", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	songs, err := catalog.NewAccess(db).Search(ctx, term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	if len(songs) == 0 {
		r.writePlain("no songs matched %q\n", term)
		return nil
	}
	r.writeSongTable(songs)
	return nil
}

// CatalogArtists lists all artists.
func (r *Runner) CatalogArtists(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	artists, err := catalog.NewAccess(db).ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list artists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(artists, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Artists")
	for _, artist := range artists {
		r.writePlain("%4d  %s\n", artist.ID, artist.Name)
	}
	return nil
}

// CatalogGenres lists all genres.
func (r *Runner) CatalogGenres(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	genres, err := catalog.NewAccess(db).ListGenres(ctx)
	if err != nil {
		return fmt.Errorf("failed to list genres: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Genres")
	for _, genre := range genres {
		r.writePlain("%4d  %s\n", genre.ID, genre.Name)
	}
	return nil
}

func (r *Runner) writeSongTable(songs []models.SongView) {
	r.writePlainHeader(fmt.Sprintf("Songs (%d)", len(songs)))
	for _, song := range songs {
		duration := shared.FormatDuration(song.Duration)
		r.writePlain("%4d  %-30s  %-20s  %-20s  %-12s  %s\n",
			song.ID, song.Title, song.Artist, song.Album, song.Genre, duration)
	}
}
