package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/softsholm/cadenza/internal/catalog"
	"github.com/softsholm/cadenza/internal/identity"
	"github.com/softsholm/cadenza/internal/models"
	"github.com/softsholm/cadenza/internal/playlist"
	"github.com/softsholm/cadenza/internal/shared"
)

// ViewState represents the current view in the shell.
type ViewState int

const (
	MenuView ViewState = iota
	RegisterView
	LoginView
	SearchView
	SongListView
	ArtistListView
	GenreListView
	PlaylistListView
	PlaylistSongsView
	PickPlaylistView
	CreatePlaylistView
	ProfileView
)

// Model represents the shell application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	backView ViewState

	identity *identity.Service
	catalog  *catalog.Access
	engine   *playlist.Engine
	logger   *log.Logger

	user   *models.UserView
	width  int
	height int

	menuList         list.Model
	songList         list.Model
	artistList       list.Model
	genreList        list.Model
	playlistList     list.Model
	pickList         list.Model
	playlistSongList list.Model

	inputs     []textinput.Model
	focusIndex int

	pendingSong *models.SongView

	status    string
	statusErr bool
	err       error

	help help.Model
	keys keyMap
}

type songsLoadedMsg struct {
	title string
	songs []models.SongView
	back  ViewState
	err   error
}

type artistsLoadedMsg struct {
	artists []models.ArtistView
	err     error
}

type genresLoadedMsg struct {
	genres []models.GenreView
	err    error
}

type playlistsLoadedMsg struct {
	playlists []models.PlaylistView
	picking   bool
	err       error
}

type playlistSongsLoadedMsg struct {
	playlist models.PlaylistView
	songs    []models.PlaylistSongView
	err      error
}

type registeredMsg struct {
	username string
	err      error
}

type loggedInMsg struct {
	user models.UserView
	err  error
}

type playlistCreatedMsg struct {
	name string
	err  error
}

type songAddedMsg struct {
	song     string
	playlist string
	err      error
}

// NewModel creates a shell model wired to the given components.
func NewModel(ctx context.Context, id *identity.Service, cat *catalog.Access, eng *playlist.Engine, logger *log.Logger) *Model {
	m := &Model{
		ctx:      ctx,
		view:     MenuView,
		identity: id,
		catalog:  cat,
		engine:   eng,
		logger:   logger,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.rebuildMenu()
	return m
}

// Init implements tea.Model. The menu is built up front, so there is
// nothing to do until the first key or resize arrives.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuList.SetSize(msg.Width-4, msg.Height-8)
		for _, l := range []*list.Model{&m.songList, &m.artistList, &m.genreList, &m.playlistList, &m.pickList, &m.playlistSongList} {
			if l.Width() > 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case songsLoadedMsg:
		if msg.err != nil {
			m.fail("load songs", msg.err)
			return m, nil
		}
		m.songList = m.newList(msg.title, songItems(msg.songs))
		m.backView = msg.back
		m.view = SongListView
		return m, nil

	case artistsLoadedMsg:
		if msg.err != nil {
			m.fail("load artists", msg.err)
			return m, nil
		}
		items := make([]list.Item, len(msg.artists))
		for i, a := range msg.artists {
			items[i] = artistItem{artist: a}
		}
		m.artistList = m.newList("Artists", items)
		m.view = ArtistListView
		return m, nil

	case genresLoadedMsg:
		if msg.err != nil {
			m.fail("load genres", msg.err)
			return m, nil
		}
		items := make([]list.Item, len(msg.genres))
		for i, g := range msg.genres {
			items[i] = genreItem{genre: g}
		}
		m.genreList = m.newList("Genres", items)
		m.view = GenreListView
		return m, nil

	case playlistsLoadedMsg:
		if msg.err != nil {
			m.fail("load playlists", msg.err)
			return m, nil
		}
		if msg.picking {
			if len(msg.playlists) == 0 {
				m.setStatus("you have no playlists yet; create one first", true)
				return m, nil
			}
			m.pickList = m.newList(fmt.Sprintf("Add %q to...", m.pendingSong.Title), playlistItems(msg.playlists))
			m.view = PickPlaylistView
			return m, nil
		}
		m.playlistList = m.newList("My Playlists", playlistItems(msg.playlists))
		m.view = PlaylistListView
		return m, nil

	case playlistSongsLoadedMsg:
		if msg.err != nil {
			m.fail("load playlist songs", msg.err)
			return m, nil
		}
		items := make([]list.Item, len(msg.songs))
		for i, s := range msg.songs {
			items[i] = playlistSongItem{song: s}
		}
		m.playlistSongList = m.newList(msg.playlist.Name, items)
		m.view = PlaylistSongsView
		return m, nil

	case registeredMsg:
		if msg.err != nil {
			m.fail("register", msg.err)
			m.view = RegisterView
			return m, nil
		}
		m.setStatus(fmt.Sprintf("account %q created, you can sign in now", msg.username), false)
		m.view = MenuView
		return m, nil

	case loggedInMsg:
		if msg.err != nil {
			m.fail("login", msg.err)
			m.view = LoginView
			return m, nil
		}
		user := msg.user
		m.user = &user
		m.rebuildMenu()
		m.setStatus(fmt.Sprintf("welcome back, %s", user.Username), false)
		m.view = MenuView
		return m, nil

	case playlistCreatedMsg:
		if msg.err != nil {
			m.fail("create playlist", msg.err)
			m.view = CreatePlaylistView
			return m, nil
		}
		m.setStatus(fmt.Sprintf("playlist %q created", msg.name), false)
		m.view = MenuView
		return m, nil

	case songAddedMsg:
		if msg.err != nil {
			m.fail("add song", msg.err)
			m.view = SongListView
			return m, nil
		}
		m.setStatus(fmt.Sprintf("added %q to %q", msg.song, msg.playlist), false)
		m.pendingSong = nil
		m.view = SongListView
		return m, nil
	}

	return m.updateActiveList(msg)
}

// newList builds a sized default-delegate list. Filtering stays enabled
// so "/" narrows long catalogs in place.
func (m *Model) newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetSize(m.width-4, m.height-8)
	return l
}

func (m *Model) rebuildMenu() {
	var items []list.Item
	if m.user == nil {
		items = []list.Item{
			menuItem{"Browse songs", "every song in the catalog", actionBrowseSongs},
			menuItem{"Search", "find songs by title, artist, or album", actionSearch},
			menuItem{"Artists", "browse the catalog by artist", actionBrowseArtists},
			menuItem{"Genres", "browse the catalog by genre", actionBrowseGenres},
			menuItem{"Sign in", "log into an existing account", actionLogin},
			menuItem{"Register", "create a new account", actionRegister},
			menuItem{"Quit", "leave the shell", actionQuit},
		}
	} else {
		items = []list.Item{
			menuItem{"Browse songs", "every song in the catalog", actionBrowseSongs},
			menuItem{"Search", "find songs by title, artist, or album", actionSearch},
			menuItem{"Artists", "browse the catalog by artist", actionBrowseArtists},
			menuItem{"Genres", "browse the catalog by genre", actionBrowseGenres},
			menuItem{"My playlists", "your playlists and their songs", actionMyPlaylists},
			menuItem{"New playlist", "create an empty playlist", actionCreatePlaylist},
			menuItem{"Profile", "account details", actionProfile},
			menuItem{"Sign out", "return to the guest menu", actionLogout},
			menuItem{"Quit", "leave the shell", actionQuit},
		}
	}
	m.menuList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.menuList.Title = "Cadenza"
	m.menuList.SetShowStatusBar(false)
	m.menuList.SetFilteringEnabled(false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// fail logs the underlying error and surfaces a readable status line.
func (m *Model) fail(op string, err error) {
	if m.logger != nil {
		m.logger.Error("shell operation failed", "op", op, "error", err)
	}
	m.setStatus(friendly(err), true)
	m.view = MenuView
}

// friendly maps component sentinels to shell-facing text.
func friendly(err error) string {
	switch {
	case errors.Is(err, shared.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, shared.ErrDuplicateIdentity):
		return "that username or email is already registered"
	case errors.Is(err, shared.ErrDuplicateEntry):
		return "that song is already in the playlist"
	case errors.Is(err, shared.ErrEmptyName):
		return "a name is required"
	case errors.Is(err, shared.ErrNotFound):
		return "that record no longer exists"
	default:
		return "something went wrong; check the log for details"
	}
}

func (m *Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case MenuView:
		m.menuList, cmd = m.menuList.Update(msg)
	case SongListView:
		m.songList, cmd = m.songList.Update(msg)
	case ArtistListView:
		m.artistList, cmd = m.artistList.Update(msg)
	case GenreListView:
		m.genreList, cmd = m.genreList.Update(msg)
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case PickPlaylistView:
		m.pickList, cmd = m.pickList.Update(msg)
	case PlaylistSongsView:
		m.playlistSongList, cmd = m.playlistSongList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadAllSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.catalog.ListSongs(m.ctx)
		return songsLoadedMsg{title: "All Songs", songs: songs, back: MenuView, err: err}
	}
}

func (m *Model) searchSongs(term string) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.catalog.Search(m.ctx, term)
		return songsLoadedMsg{title: fmt.Sprintf("Results for %q", term), songs: songs, back: MenuView, err: err}
	}
}

func (m *Model) loadArtists() tea.Cmd {
	return func() tea.Msg {
		artists, err := m.catalog.ListArtists(m.ctx)
		return artistsLoadedMsg{artists: artists, err: err}
	}
}

func (m *Model) loadArtistSongs(artist models.ArtistView) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.catalog.SongsByArtist(m.ctx, artist.ID)
		return songsLoadedMsg{title: fmt.Sprintf("Songs by %s", artist.Name), songs: songs, back: ArtistListView, err: err}
	}
}

func (m *Model) loadGenres() tea.Cmd {
	return func() tea.Msg {
		genres, err := m.catalog.ListGenres(m.ctx)
		return genresLoadedMsg{genres: genres, err: err}
	}
}

func (m *Model) loadGenreSongs(genre models.GenreView) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.catalog.SongsByGenre(m.ctx, genre.ID)
		return songsLoadedMsg{title: fmt.Sprintf("%s Songs", genre.Name), songs: songs, back: GenreListView, err: err}
	}
}

func (m *Model) loadPlaylists(picking bool) tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.engine.ListUserPlaylists(m.ctx, m.user.ID)
		return playlistsLoadedMsg{playlists: playlists, picking: picking, err: err}
	}
}

func (m *Model) loadPlaylistSongs(pl models.PlaylistView) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.engine.ListSongs(m.ctx, pl.ID)
		return playlistSongsLoadedMsg{playlist: pl, songs: songs, err: err}
	}
}

func (m *Model) register(username, email, credential string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.identity.Register(m.ctx, username, email, credential)
		return registeredMsg{username: username, err: err}
	}
}

func (m *Model) login(username, credential string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.identity.Authenticate(m.ctx, username, credential)
		return loggedInMsg{user: user, err: err}
	}
}

func (m *Model) createPlaylist(name, description string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.engine.Create(m.ctx, m.user.ID, name, description)
		return playlistCreatedMsg{name: name, err: err}
	}
}

func (m *Model) addSong(playlistID int64, playlistName string) tea.Cmd {
	song := m.pendingSong
	return func() tea.Msg {
		err := m.engine.AddSong(m.ctx, playlistID, song.ID)
		return songAddedMsg{song: song.Title, playlist: playlistName, err: err}
	}
}
