package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

// focusOrder is the tab cycle, top of the screen first
var focusOrder = []Focus{FocusSearch, FocusCarousel, FocusGrid}

func (f Focus) next() Focus {
	for i, o := range focusOrder {
		if o == f {
			return focusOrder[catalog.NextIndex(i, len(focusOrder))]
		}
	}
	return FocusGrid
}

func (f Focus) prev() Focus {
	for i, o := range focusOrder {
		if o == f {
			return focusOrder[catalog.PrevIndex(i, len(focusOrder))]
		}
	}
	return FocusGrid
}

// setFocus moves keyboard focus to a pane
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.Focus = f
	m.Grid.SetFocused(f == FocusGrid)
	m.Slider.SetFocused(f == FocusCarousel)

	var cmd tea.Cmd
	if f == FocusSearch {
		cmd = m.SearchBar.Focus()
	} else {
		m.SearchBar.Blur()
	}
	m.syncInspector()
	return cmd
}

// submitSearch enters search mode, or leaves it for a blank query
func (m *Model) submitSearch(query string) tea.Cmd {
	m.Grid.ClearFilter()

	req, ok := m.store.SubmitSearch(query)
	if !ok {
		m.cancelSlot(catalog.SlotSearch)
		m.syncComponents()
		return nil
	}

	m.logger.Info("search submitted", "query", query)
	m.syncComponents()
	return tea.Batch(m.fetch(req), m.setFocus(FocusGrid))
}

// clearSearch returns the main view to browsing
func (m *Model) clearSearch() tea.Cmd {
	m.store.ClearSearch()
	m.cancelSlot(catalog.SlotSearch)
	m.SearchBar.Reset()
	m.Grid.ClearFilter()
	m.syncComponents()
	return nil
}

// switchCategory shows page 1 of a category, leaving search mode first
func (m *Model) switchCategory(category domain.Category) tea.Cmd {
	if m.store.Searching() {
		m.clearSearch()
	}
	m.Grid.ClearFilter()

	req, ok := m.store.SetCategory(category)
	m.syncComponents()
	focus := m.setFocus(FocusGrid)
	if !ok {
		return focus
	}
	m.logger.Info("category changed", "category", category)
	return tea.Batch(m.fetch(req), focus)
}

// changePage paginates the browse grid
func (m *Model) changePage(page int) tea.Cmd {
	req, ok := m.store.SetPage(page)
	if !ok {
		return nil
	}
	m.Grid.ClearFilter()
	m.syncComponents()
	return m.fetch(req)
}

// retry re-issues every visible fetch that failed
func (m *Model) retry() tea.Cmd {
	var cmds []tea.Cmd

	if m.store.Searching() {
		if m.store.Search().Fetch().Failed() {
			if req, ok := m.store.Retry(catalog.SlotSearch); ok {
				cmds = append(cmds, m.fetch(req))
			}
		}
	} else if m.store.Browse().Fetch().Failed() {
		req, _ := m.store.Retry(catalog.SlotBrowse)
		cmds = append(cmds, m.fetch(req))
	}
	if m.store.TopRated().Fetch().Failed() {
		req, _ := m.store.Retry(catalog.SlotTopRated)
		cmds = append(cmds, m.fetch(req))
	}
	if m.ShowUpcoming && m.store.Upcoming().Fetch().Failed() {
		req, _ := m.store.Retry(catalog.SlotUpcoming)
		cmds = append(cmds, m.fetch(req))
	}

	if len(cmds) == 0 {
		return m.setStatus("Nothing to retry", false)
	}
	m.syncComponents()
	return tea.Batch(cmds...)
}

// openMovie hands the movie page to the opener
func (m Model) openMovie(movie domain.Movie) tea.Cmd {
	if m.opener == nil {
		return nil
	}
	m.logger.Info("movie selected", "movie_id", movie.ID, "title", movie.Title)
	return OpenMovieCmd(m.opener, movie)
}
