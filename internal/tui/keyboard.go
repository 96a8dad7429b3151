package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.shutdown()
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Text inputs capture typing before any global key
	if m.Focus == FocusSearch {
		return m.handleSearchKey(msg)
	}
	if m.Focus == FocusGrid && m.Grid.Filtering() {
		_, cmd := m.Grid.HandleKey(msg)
		m.syncInspector()
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.NextFocus):
		return m, m.setFocus(m.Focus.next())

	case key.Matches(msg, Keys.PrevFocus):
		return m, m.setFocus(m.Focus.prev())

	case key.Matches(msg, Keys.Search):
		return m, m.setFocus(FocusSearch)

	case key.Matches(msg, Keys.Popular):
		return m, m.switchCategory(domain.CategoryPopular)
	case key.Matches(msg, Keys.TopRated):
		return m, m.switchCategory(domain.CategoryTopRated)
	case key.Matches(msg, Keys.Upcoming):
		return m, m.switchCategory(domain.CategoryUpcoming)
	case key.Matches(msg, Keys.NowPlaying):
		return m, m.switchCategory(domain.CategoryNowPlaying)

	case key.Matches(msg, Keys.Retry):
		return m, m.retry()

	case key.Matches(msg, Keys.Inspector):
		m.ShowInspector = !m.ShowInspector
		m.updateLayout()
		return m, nil

	// A local filter takes the first esc, the search the next one
	case key.Matches(msg, Keys.Escape) && m.store.Searching() &&
		!(m.Focus == FocusGrid && m.Grid.FilterQuery() != ""):
		return m, m.clearSearch()
	}

	switch m.Focus {
	case FocusGrid:
		return m.handleGridKey(msg)
	case FocusCarousel:
		return m.handleSliderKey(msg)
	}
	return m, nil
}

// handleSearchKey routes keys while the search bar has focus
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.NextFocus):
		return m, m.setFocus(m.Focus.next())
	case key.Matches(msg, Keys.PrevFocus):
		return m, m.setFocus(m.Focus.prev())
	}

	var (
		cmd    tea.Cmd
		action components.SearchAction
	)
	m.SearchBar, cmd, action = m.SearchBar.Update(msg)

	switch action {
	case components.SearchSubmit:
		return m, m.submitSearch(m.SearchBar.Value())
	case components.SearchCancel:
		clearCmd := m.clearSearch()
		return m, tea.Batch(clearCmd, m.setFocus(FocusGrid))
	}

	// Emptying the input by hand leaves search mode. Nothing is fetched.
	if m.SearchBar.Value() == "" && m.store.Searching() {
		m.clearSearch()
	}
	return m, cmd
}

// handleGridKey routes keys while the grid has focus
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.Grid.HandleKey(msg)

	switch action {
	case components.GridSelect:
		movie, _ := m.Grid.Selected()
		return m, tea.Batch(cmd, m.openMovie(movie))
	case components.GridPrevPage:
		return m, m.changePage(m.store.Browse().Page() - 1)
	case components.GridNextPage:
		return m, m.changePage(m.store.Browse().Page() + 1)
	}

	m.syncInspector()
	return m, cmd
}

// handleSliderKey routes keys while the carousel has focus
func (m Model) handleSliderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.store.Carousel()

	switch m.Slider.HandleKey(msg) {
	case components.SliderPrev:
		c.Prev()
	case components.SliderNext:
		c.Next()
	case components.SliderSelect:
		var cmd tea.Cmd
		c.Select(func(movie domain.Movie) {
			cmd = m.openMovie(movie)
		})
		return m, cmd
	}

	m.syncInspector()
	return m, nil
}
