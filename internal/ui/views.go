package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case MenuView:
		return m.handleMenuKeys(msg)
	case RegisterView, LoginView, SearchView, CreatePlaylistView:
		return m.handleFormKeys(msg)
	case SongListView:
		return m.handleSongListKeys(msg)
	case ArtistListView:
		return m.handleArtistListKeys(msg)
	case GenreListView:
		return m.handleGenreListKeys(msg)
	case PlaylistListView:
		return m.handlePlaylistListKeys(msg)
	case PlaylistSongsView:
		return m.handlePlaylistSongsKeys(msg)
	case PickPlaylistView:
		return m.handlePickPlaylistKeys(msg)
	case ProfileView:
		return m.handleProfileKeys(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		item, ok := m.menuList.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.setStatus("", false)
		switch item.action {
		case actionBrowseSongs:
			return m, m.loadAllSongs()
		case actionSearch:
			m.openSearchForm()
			return m, nil
		case actionBrowseArtists:
			return m, m.loadArtists()
		case actionBrowseGenres:
			return m, m.loadGenres()
		case actionRegister:
			m.openRegisterForm()
			return m, nil
		case actionLogin:
			m.openLoginForm()
			return m, nil
		case actionMyPlaylists:
			return m, m.loadPlaylists(false)
		case actionCreatePlaylist:
			m.openCreatePlaylistForm()
			return m, nil
		case actionProfile:
			m.view = ProfileView
			return m, nil
		case actionLogout:
			m.user = nil
			m.rebuildMenu()
			m.setStatus("signed out", false)
			return m, nil
		case actionQuit:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menuList, cmd = m.menuList.Update(msg)
	return m, cmd
}

func (m *Model) handleSongListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.songList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.pendingSong = nil
		m.view = m.backView
		return m, nil
	case "enter":
		item, ok := m.songList.SelectedItem().(songItem)
		if !ok {
			return m, nil
		}
		if m.user == nil {
			m.setStatus("sign in to add songs to a playlist", true)
			return m, nil
		}
		song := item.song
		m.pendingSong = &song
		return m, m.loadPlaylists(true)
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleArtistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.artistList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.artistList, cmd = m.artistList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "enter":
		if item, ok := m.artistList.SelectedItem().(artistItem); ok {
			return m, m.loadArtistSongs(item.artist)
		}
	}

	var cmd tea.Cmd
	m.artistList, cmd = m.artistList.Update(msg)
	return m, cmd
}

func (m *Model) handleGenreListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.genreList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.genreList, cmd = m.genreList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "enter":
		if item, ok := m.genreList.SelectedItem().(genreItem); ok {
			return m, m.loadGenreSongs(item.genre)
		}
	}

	var cmd tea.Cmd
	m.genreList, cmd = m.genreList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.playlistList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.playlistList, cmd = m.playlistList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "enter":
		if item, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			return m, m.loadPlaylistSongs(item.playlist)
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistSongsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistSongList, cmd = m.playlistSongList.Update(msg)
	return m, cmd
}

func (m *Model) handlePickPlaylistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.pendingSong = nil
		m.view = SongListView
		return m, nil
	case "enter":
		if item, ok := m.pickList.SelectedItem().(playlistItem); ok {
			return m, m.addSong(item.playlist.ID, item.playlist.Name)
		}
	}

	var cmd tea.Cmd
	m.pickList, cmd = m.pickList.Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.view = MenuView
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case MenuView:
		return m.renderList(m.menuList, m.keys.enter)
	case RegisterView:
		return m.renderForm("Create an account")
	case LoginView:
		return m.renderForm("Sign in")
	case SearchView:
		return m.renderForm("Search the catalog")
	case CreatePlaylistView:
		return m.renderForm("New playlist")
	case SongListView:
		if m.user != nil {
			return m.renderList(m.songList, m.keys.add)
		}
		return m.renderList(m.songList, m.keys.back)
	case ArtistListView:
		return m.renderList(m.artistList, m.keys.enter)
	case GenreListView:
		return m.renderList(m.genreList, m.keys.enter)
	case PlaylistListView:
		return m.renderList(m.playlistList, m.keys.enter)
	case PlaylistSongsView:
		return m.renderList(m.playlistSongList, m.keys.back)
	case PickPlaylistView:
		return m.renderList(m.pickList, m.keys.enter)
	case ProfileView:
		return m.renderProfile()
	default:
		return ""
	}
}

func (m *Model) renderList(l list.Model, primary key.Binding) string {
	helpKeys := []key.Binding{primary, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", l.View(), m.renderStatus(), helpView)
}

func (m *Model) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		if i == m.focusIndex {
			b.WriteString(styles.prompt.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.submit, m.keys.back}))
	return b.String()
}

func (m *Model) renderProfile() string {
	if m.user == nil {
		return styles.warn.Render("No user signed in") + "\n" + m.help.ShortHelpView([]key.Binding{m.keys.back})
	}

	title := styles.title.Render("Profile")
	role := "listener"
	if m.user.IsAdmin {
		role = "admin"
	}
	info := fmt.Sprintf("Username: %s\nEmail:    %s\nRole:     %s", m.user.Username, m.user.Email, role)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return styles.err.Render(m.status)
	}
	return styles.ok.Render(m.status)
}
