package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/softsholm/cadenza/internal/models"
	"github.com/softsholm/cadenza/internal/shared"
)

var (
	_ list.Item = menuItem{}
	_ list.Item = songItem{}
	_ list.Item = artistItem{}
	_ list.Item = genreItem{}
	_ list.Item = playlistItem{}
	_ list.Item = playlistSongItem{}
)

// menuAction identifies what selecting a main menu entry does.
type menuAction int

const (
	actionBrowseSongs menuAction = iota
	actionSearch
	actionBrowseArtists
	actionBrowseGenres
	actionRegister
	actionLogin
	actionMyPlaylists
	actionCreatePlaylist
	actionProfile
	actionLogout
	actionQuit
)

// menuItem is a main menu entry.
type menuItem struct {
	label  string
	detail string
	action menuAction
}

func (i menuItem) FilterValue() string { return i.label }
func (i menuItem) Title() string       { return i.label }
func (i menuItem) Description() string { return i.detail }

// songItem wraps [models.SongView] to implement [list.Item].
type songItem struct {
	song models.SongView
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.song.Artist, i.song.Album)
	if i.song.Genre != models.UnknownGenre {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Genre)
	}
	if i.song.Duration > 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatDuration(i.song.Duration))
	}
	return desc
}

// artistItem wraps [models.ArtistView] to implement [list.Item].
type artistItem struct {
	artist models.ArtistView
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string {
	if i.artist.Bio == "" {
		return "no bio"
	}
	return i.artist.Bio
}

// genreItem wraps [models.GenreView] to implement [list.Item].
type genreItem struct {
	genre models.GenreView
}

func (i genreItem) FilterValue() string { return i.genre.Name }
func (i genreItem) Title() string       { return i.genre.Name }
func (i genreItem) Description() string { return "browse songs in this genre" }

// playlistItem wraps [models.PlaylistView] to implement [list.Item].
type playlistItem struct {
	playlist models.PlaylistView
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d songs", i.playlist.SongCount)
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// playlistSongItem wraps [models.PlaylistSongView] to implement [list.Item].
type playlistSongItem struct {
	song models.PlaylistSongView
}

func (i playlistSongItem) FilterValue() string { return i.song.Title }
func (i playlistSongItem) Title() string {
	return fmt.Sprintf("%d. %s", i.song.Position, i.song.Title)
}
func (i playlistSongItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.song.Artist, i.song.Album)
	if i.song.Duration > 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatDuration(i.song.Duration))
	}
	return desc
}

func songItems(songs []models.SongView) []list.Item {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}
	return items
}

func playlistItems(playlists []models.PlaylistView) []list.Item {
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = playlistItem{playlist: p}
	}
	return items
}
