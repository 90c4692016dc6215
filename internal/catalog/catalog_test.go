package catalog

import (
	"context"
	"database/sql"
	"testing"

	helpers "github.com/softsholm/cadenza/internal/testing"
)

// seedCatalog inserts two artists with an album each, two genres, and four
// songs (one without a genre).
func seedCatalog(t *testing.T, db *sql.DB) (artistIDs, genreIDs, songIDs []int64) {
	t.Helper()

	queen := helpers.InsertArtist(t, db, "Queen", "Formed in London in 1970.")
	daft := helpers.InsertArtist(t, db, "Daft Punk", "")

	opera := helpers.InsertAlbum(t, db, "A Night at the Opera", 1975, queen)
	discovery := helpers.InsertAlbum(t, db, "Discovery", 2001, daft)

	rock := helpers.InsertGenre(t, db, "Rock")
	electronic := helpers.InsertGenre(t, db, "Electronic")

	songs := []int64{
		helpers.InsertSong(t, db, "Bohemian Rhapsody", 354.0, queen, opera, rock),
		helpers.InsertSong(t, db, "Love of My Life", 219.0, queen, opera, rock),
		helpers.InsertSong(t, db, "One More Time", 320.0, daft, discovery, electronic),
		helpers.InsertSong(t, db, "Untitled Demo", 0, daft, discovery, 0),
	}
	return []int64{queen, daft}, []int64{rock, electronic}, songs
}

func TestListSongs(t *testing.T) {
	db := helpers.NewTestDB(t)
	access := NewAccess(db)
	_, _, songIDs := seedCatalog(t, db)

	songs, err := access.ListSongs(context.Background())
	if err != nil {
		t.Fatalf("failed to list songs: %v", err)
	}
	if len(songs) != len(songIDs) {
		t.Fatalf("expected %d songs, got %d", len(songIDs), len(songs))
	}

	byTitle := map[string]int{}
	for _, song := range songs {
		byTitle[song.Title]++
		if song.Artist == "" || song.Album == "" {
			t.Errorf("song %s missing artist or album: %+v", song.Title, song)
		}
	}
	if byTitle["Bohemian Rhapsody"] != 1 {
		t.Error("expected Bohemian Rhapsody in listing")
	}
}

func TestListSongsUnknownGenre(t *testing.T) {
	db := helpers.NewTestDB(t)
	access := NewAccess(db)
	seedCatalog(t, db)

	songs, err := access.ListSongs(context.Background())
	if err != nil {
		t.Fatalf("failed to list songs: %v", err)
	}

	for _, song := range songs {
		if song.Title == "Untitled Demo" {
			if song.Genre != "Unknown" {
				t.Errorf("expected genre 'Unknown', got %s", song.Genre)
			}
			if song.Duration != 0 {
				t.Errorf("expected zero duration, got %v", song.Duration)
			}
			return
		}
	}
	t.Fatal("fixture song 'Untitled Demo' not returned")
}

func TestSearch(t *testing.T) {
	db := helpers.NewTestDB(t)
	access := NewAccess(db)
	seedCatalog(t, db)
	ctx := context.Background()

	tc := []struct {
		name string
		term string
		want int
	}{
		{name: "song title match", term: "rhapsody", want: 1},
		{name: "artist name match", term: "daft", want: 2},
		{name: "album title match", term: "OPERA", want: 2},
		{name: "substring match", term: "one", want: 1},
		{name: "no match", term: "polka", want: 0},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			songs, err := access.Search(ctx, tt.term)
			if err != nil {
				t.Fatalf("failed to search %q: %v", tt.term, err)
			}
			if len(songs) != tt.want {
				t.Errorf("search %q: expected %d songs, got %d", tt.term, tt.want, len(songs))
			}
		})
	}
}

func TestListArtists(t *testing.T) {
	db := helpers.NewTestDB(t)
	access := NewAccess(db)
	seedCatalog(t, db)

	artists, err := access.ListArtists(context.Background())
	if err != nil {
		t.Fatalf("failed to list artists: %v", err)
	}
	if len(artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(artists))
	}

	// Ordered by name: Daft Punk before Queen.
	if artists[0].Name != "Daft Punk" || artists[1].Name != "Queen" {
		t.Errorf("unexpected artist order: %s, %s", artists[0].Name, artists[1].Name)
	}
	if artists[0].Bio != "" {
		t.Errorf("expected empty bio, got %s", artists[0].Bio)
	}
	if artists[1].Bio == "" {
		t.Error("expected Queen bio to be populated")
	}
}

func TestSongsByArtist(t *testing.T) {
	db := helpers.NewTestDB(t)
	access := NewAccess(db)
	artistIDs, _, _ := seedCatalog(t, db)

	songs, err := access.SongsByArtist(context.Background(), artistIDs[0])
	if err != nil {
		t.Fatalf("failed to list songs by artist: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(songs))
	}
	for _, song := range songs {
		if song.Artist != "Queen" {
			t.Errorf("expected artist Queen, got %s", song.Artist)
		}
	}
}

func TestListGenresAndSongsByGenre(t *testing.T) {
	db := helpers.NewTestDB(t)
	access := NewAccess(db)
	_, genreIDs, _ := seedCatalog(t, db)
	ctx := context.Background()

	genres, err := access.ListGenres(ctx)
	if err != nil {
		t.Fatalf("failed to list genres: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(genres))
	}
	if genres[0].Name != "Electronic" || genres[1].Name != "Rock" {
		t.Errorf("unexpected genre order: %s, %s", genres[0].Name, genres[1].Name)
	}

	songs, err := access.SongsByGenre(ctx, genreIDs[0])
	if err != nil {
		t.Fatalf("failed to list songs by genre: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("expected 2 rock songs, got %d", len(songs))
	}
	for _, song := range songs {
		if song.Genre != "Rock" {
			t.Errorf("expected genre Rock, got %s", song.Genre)
		}
	}
}
