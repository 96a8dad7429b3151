package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return m.Spinner.View() + " Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	main := m.Grid.View()
	if side := m.renderSide(); side != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, side)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.SearchBar.View(),
		m.Slider.View(m.store.Carousel(), m.store.TopRated().Fetch()),
		main,
		m.renderFooter(),
	)
}

// renderSide renders the right column: details win over coming soon
func (m Model) renderSide() string {
	switch {
	case m.ShowInspector:
		return m.Inspector.View()
	case m.ShowUpcoming:
		return m.Upcoming.View(m.store.Upcoming().Movies(), m.store.Upcoming().Fetch())
	}
	return ""
}

// renderFooter renders the logo plus either the status or key hints
func (m Model) renderFooter() string {
	logo := styles.LogoStyle.Render("MARQUEE")
	width := max(m.Width-lipgloss.Width(logo)-1, 0)

	var right string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		right = styles.ErrorStyle.Render(styles.Truncate(m.StatusMsg, width))
	case m.StatusMsg != "":
		right = styles.SuccessStyle.Render(styles.Truncate(m.StatusMsg, width))
	default:
		h := m.Help
		h.Width = width
		right = h.ShortHelpView(Keys.ShortHelp())
	}
	return logo + " " + right
}

// renderHelp renders the full key reference
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Keys"),
		"",
		h.View(Keys),
		"",
		styles.SubtitleStyle.Render("Grid: arrows/hjkl move · [ ] page · / filter · enter open"),
		styles.SubtitleStyle.Render("Carousel: ←/→ slide · enter open"),
		"",
		styles.DimStyle.Render("esc or ? to close"),
	)
	box := styles.ActiveBorder.Padding(1, 2).Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
