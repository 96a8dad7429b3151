package components

import "github.com/charmbracelet/bubbles/key"

// GridKeyMap defines key bindings for the movie grid
type GridKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Escape   key.Binding
	Enter    key.Binding
	Filter   key.Binding
}

// DefaultGridKeyMap returns the default grid key bindings
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next page"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
	}
}

// SliderKeyMap defines key bindings for the top-rated carousel
type SliderKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Enter key.Binding
}

// DefaultSliderKeyMap returns the default carousel key bindings
func DefaultSliderKeyMap() SliderKeyMap {
	return SliderKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left", ","),
			key.WithHelp("h/←", "prev slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "."),
			key.WithHelp("l/→", "next slide"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}
