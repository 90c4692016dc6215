package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func (m *Model) openForm(view ViewState, inputs ...textinput.Model) {
	m.inputs = inputs
	m.focusIndex = 0
	m.inputs[0].Focus()
	m.view = view
}

func (m *Model) openRegisterForm() {
	m.openForm(RegisterView,
		newInput("username", false),
		newInput("email", false),
		newInput("password", true),
	)
}

func (m *Model) openLoginForm() {
	m.openForm(LoginView,
		newInput("username", false),
		newInput("password", true),
	)
}

func (m *Model) openSearchForm() {
	m.openForm(SearchView, newInput("title, artist, or album", false))
}

func (m *Model) openCreatePlaylistForm() {
	m.openForm(CreatePlaylistView,
		newInput("playlist name", false),
		newInput("description (optional)", false),
	)
}

// handleFormKeys drives focus across the form inputs. Enter on the last
// field submits; enter anywhere else advances, matching how the forms
// read top to bottom.
func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "tab", "down":
		m.focusField(m.focusIndex + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusField(m.focusIndex - 1)
		return m, nil
	case "enter":
		if m.focusIndex < len(m.inputs)-1 {
			m.focusField(m.focusIndex + 1)
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) focusField(index int) {
	if index < 0 {
		index = len(m.inputs) - 1
	}
	if index >= len(m.inputs) {
		index = 0
	}
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = index
	m.inputs[m.focusIndex].Focus()
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}

	switch m.view {
	case RegisterView:
		if values[0] == "" || values[1] == "" || values[2] == "" {
			m.setStatus("username, email, and password are all required", true)
			return m, nil
		}
		return m, m.register(values[0], values[1], values[2])

	case LoginView:
		if values[0] == "" || values[1] == "" {
			m.setStatus("username and password are required", true)
			return m, nil
		}
		return m, m.login(values[0], values[1])

	case SearchView:
		if values[0] == "" {
			m.setStatus("enter something to search for", true)
			return m, nil
		}
		return m, m.searchSongs(values[0])

	case CreatePlaylistView:
		if values[0] == "" {
			m.setStatus("a playlist needs a name", true)
			return m, nil
		}
		return m, m.createPlaylist(values[0], values[1])
	}

	return m, nil
}
