package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. Grid and carousel
// navigation keys live with their components.
type KeyMap struct {
	// Focus
	NextFocus key.Binding
	PrevFocus key.Binding
	Search    key.Binding

	// Categories
	Popular    key.Binding
	TopRated   key.Binding
	Upcoming   key.Binding
	NowPlaying key.Binding

	// Actions
	Quit      key.Binding
	Help      key.Binding
	Escape    key.Binding
	Retry     key.Binding
	Inspector key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev pane"),
		),
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),

		Popular: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "popular"),
		),
		TopRated: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "top rated"),
		),
		Upcoming: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "coming soon"),
		),
		NowPlaying: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "now playing"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Inspector: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "details"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Search, k.Retry, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Search, k.Escape},
		{k.Popular, k.TopRated, k.Upcoming, k.NowPlaying},
		{k.Retry, k.Inspector, k.Help, k.Quit},
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
