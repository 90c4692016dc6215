// Package ui implements the interactive terminal shell using bubbletea's Elm architecture.
//
// The shell is a menu-driven workflow over the catalog and playlist
// components:
//  1. [MenuView] : Main menu; the option set depends on whether a user is signed in
//  2. [RegisterView] / [LoginView] : Account forms backed by the identity service
//  3. [SongListView] : Browse or search results; signed-in users can add a song to a playlist
//  4. [ArtistListView] / [GenreListView] : Drill into songs by artist or genre
//  5. [PlaylistListView] / [PlaylistSongsView] : The caller's playlists and their ordered songs
//  6. [PickPlaylistView] : Choose the destination playlist when adding a song
//  7. [CreatePlaylistView] : Name/description form for a new playlist
//  8. [ProfileView] : The signed-in user's account details
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Every component call runs synchronously inside a tea.Cmd; failures
// surface as a transient status line and the menu loop resumes.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
