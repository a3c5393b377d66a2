package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/shelf/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Screens
	Home      key.Binding
	Favorites key.Binding

	// Home
	OpenDetails key.Binding

	// Details
	Back        key.Binding
	AddFavorite key.Binding

	// Scrolling
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Notices
	Dismiss key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle house theme"),
		),

		Home: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "home"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "favorites"),
		),

		OpenDetails: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open book"),
		),

		Back: key.NewBinding(
			key.WithKeys("b", "esc", "backspace"),
			key.WithHelp("b/esc", "back to home"),
		),
		AddFavorite: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to favorites"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),

		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
	}
}

// viewportKeys maps the scroll bindings onto a viewport so its defaults
// (f, b, d, u) do not shadow screen keys.
func (k keyMap) viewportKeys() viewport.KeyMap {
	return viewport.KeyMap{
		Up:           k.Up,
		Down:         k.Down,
		PageUp:       k.PageUp,
		PageDown:     k.PageDown,
		HalfPageUp:   k.HalfPageUp,
		HalfPageDown: k.HalfPageDown,
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Favorites, k.Help, k.Quit}
}

// ShortHelpFor returns the footer bindings relevant to screen.
func (k keyMap) ShortHelpFor(screen state.Screen) []key.Binding {
	switch screen {
	case state.ScreenHome:
		return []key.Binding{k.OpenDetails, k.Favorites, k.Help, k.Quit}
	case state.ScreenDetails:
		return []key.Binding{k.AddFavorite, k.Back, k.Down, k.Favorites, k.Help, k.Quit}
	case state.ScreenFavorites:
		return []key.Binding{k.Home, k.Down, k.Up, k.Help, k.Quit}
	default:
		return k.ShortHelp()
	}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Favorites, k.OpenDetails, k.Back},
		{k.AddFavorite},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
