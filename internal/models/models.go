package models

import "time"

// UnknownGenre is the sentinel surfaced for songs without a genre reference.
const UnknownGenre = "Unknown"

// UserView is the read-only projection of an authenticated user. The
// interactive shell holds one of these as its identity marker for the
// remainder of the process; there are no sessions or tokens.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// ArtistView is a catalog artist row. Bio is empty when absent.
type ArtistView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// GenreView is a catalog genre row.
type GenreView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SongView is a denormalized song row joining artist, album, and genre.
// Genre is [UnknownGenre] when the song has no genre reference. Duration
// is in fractional seconds; zero means no duration is recorded.
type SongView struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	Genre    string  `json:"genre"`
	Duration float64 `json:"duration"`
	FilePath string  `json:"file_path,omitempty"`
}

// PlaylistView is a playlist row with its denormalized song count.
type PlaylistView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	SongCount   int       `json:"song_count"`
}

// PlaylistSongView is a song as it appears inside a playlist: the
// denormalized song plus its 1-based position.
type PlaylistSongView struct {
	SongView
	Position int `json:"position"`
}
