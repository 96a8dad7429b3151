package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchAction is what a key press in the search bar asked for
type SearchAction int

const (
	SearchNone SearchAction = iota
	SearchSubmit
	SearchCancel
)

// SearchBar is the explicit-submit query input. Typing never fetches;
// only enter submits.
type SearchBar struct {
	input   textinput.Model
	width   int
	loading bool
	spinner string
}

// NewSearchBar creates an empty search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Prompt = "⌕ "
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = styles.SearchTextStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus gives the bar keyboard focus
func (b *SearchBar) Focus() tea.Cmd {
	return b.input.Focus()
}

// Blur removes keyboard focus, keeping the text
func (b *SearchBar) Blur() {
	b.input.Blur()
}

// Focused reports whether the bar has keyboard focus
func (b SearchBar) Focused() bool {
	return b.input.Focused()
}

// Value returns the current input value
func (b SearchBar) Value() string {
	return b.input.Value()
}

// Reset clears the text
func (b *SearchBar) Reset() {
	b.input.SetValue("")
}

// SetWidth updates the component width
func (b *SearchBar) SetWidth(width int) {
	b.width = width
	b.input.Width = max(width-6, 10)
}

// SetLoading shows the spinner next to the input while a search runs
func (b *SearchBar) SetLoading(loading bool, spinner string) {
	b.loading = loading
	b.spinner = spinner
}

// Update handles input events, returns (bar, cmd, action)
func (b SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, SearchAction) {
	if !b.input.Focused() {
		return b, nil, SearchNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return b, nil, SearchSubmit
		case "esc":
			return b, nil, SearchCancel
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd, SearchNone
}

// View renders the search bar
func (b SearchBar) View() string {
	status := " "
	if b.loading {
		status = b.spinner
	}

	style := styles.InactiveBorder
	if b.input.Focused() {
		style = styles.ActiveBorder
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, b.input.View(), " ", status)
	return style.Width(max(b.width-2, 1)).Render(content)
}
