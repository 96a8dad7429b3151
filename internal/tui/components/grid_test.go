package components

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

func gridMovies(n int) []domain.Movie {
	out := make([]domain.Movie, n)
	for i := range out {
		out[i] = domain.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)}
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func browseView(movies []domain.Movie, page, total int) catalog.View {
	return catalog.View{
		Kind:           catalog.ViewBrowse,
		Title:          "Popular Movies",
		Movies:         movies,
		Page:           page,
		TotalPages:     total,
		ShowPagination: total > 1,
	}
}

func newTestGrid() Grid {
	g := NewGrid(4)
	g.SetSize(100, 30)
	g.SetFocused(true)
	return g
}

func TestGridCursorMovement(t *testing.T) {
	g := newTestGrid()
	g.SetView(browseView(gridMovies(10), 1, 1))

	g.HandleKey(runes("l"))
	assert.Equal(t, 1, g.Cursor())
	g.HandleKey(runes("j"))
	assert.Equal(t, 5, g.Cursor())
	g.HandleKey(runes("j"))
	assert.Equal(t, 9, g.Cursor())
	g.HandleKey(runes("j"))
	assert.Equal(t, 9, g.Cursor(), "no row below")
	g.HandleKey(runes("g"))
	assert.Equal(t, 0, g.Cursor())
	g.HandleKey(runes("h"))
	assert.Equal(t, 0, g.Cursor())
	g.HandleKey(runes("G"))
	assert.Equal(t, 9, g.Cursor())

	movie, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 10, movie.ID)
}

func TestGridCursorSurvivesSameMovies(t *testing.T) {
	g := newTestGrid()
	movies := gridMovies(8)
	g.SetView(browseView(movies, 1, 3))
	g.HandleKey(runes("l"))

	// A loading flag flip with the same page keeps the cursor
	v := browseView(movies, 1, 3)
	v.Loading = true
	g.SetView(v)
	assert.Equal(t, 1, g.Cursor())

	g.SetView(browseView(gridMovies(3), 2, 3))
	assert.Equal(t, 0, g.Cursor(), "new page resets the cursor")
}

func TestGridPagination(t *testing.T) {
	g := newTestGrid()
	g.SetView(browseView(gridMovies(10), 1, 3))

	action, _ := g.HandleKey(runes("["))
	assert.Equal(t, GridNone, action, "prev disabled on first page")
	action, _ = g.HandleKey(runes("]"))
	assert.Equal(t, GridNextPage, action)

	g.SetView(browseView(gridMovies(10), 3, 3))
	action, _ = g.HandleKey(runes("]"))
	assert.Equal(t, GridNone, action, "next disabled on last page")
	action, _ = g.HandleKey(runes("["))
	assert.Equal(t, GridPrevPage, action)
}

func TestGridEnterSelects(t *testing.T) {
	g := newTestGrid()
	action, _ := g.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, GridNone, action, "nothing to select")

	g.SetView(browseView(gridMovies(2), 1, 1))
	action, _ = g.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, GridSelect, action)
}

func TestGridFilter(t *testing.T) {
	g := newTestGrid()
	movies := gridMovies(4)
	movies[1].Title = "Alien"
	g.SetView(browseView(movies, 1, 1))

	g.HandleKey(runes("/"))
	require.True(t, g.Filtering())
	g.HandleKey(runes("ali"))
	require.Len(t, g.Visible(), 1)
	assert.Equal(t, "Alien", g.Visible()[0].Movie.Title)

	// enter keeps the filter but returns keys to navigation
	g.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, g.Filtering())
	assert.Equal(t, "ali", g.FilterQuery())
	assert.Contains(t, g.View(), "(1 of 4)")

	g.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, g.FilterQuery())
	assert.Len(t, g.Visible(), 4)
}

func TestGridViewStates(t *testing.T) {
	g := newTestGrid()

	g.SetView(catalog.View{Kind: catalog.ViewBrowse, Title: "Popular Movies", Loading: true})
	assert.Contains(t, g.View(), "Loading movies")

	g.SetView(catalog.View{Kind: catalog.ViewBrowse, Title: "Popular Movies", Err: "Error 503: Service Unavailable"})
	assert.Contains(t, g.View(), "Error 503")

	g.SetView(catalog.View{Kind: catalog.ViewNoResults, Title: "No movies found", Query: "zzz"})
	assert.Contains(t, g.View(), `No movies found for "zzz"`)
}

func TestHighlightStopsAtTruncation(t *testing.T) {
	title := "Ab Cdefghij"
	shown := "Ab Cd..."
	limit := keptBytes(title, shown)
	require.Equal(t, 5, limit)
	assert.Equal(t, len(title), keptBytes(title, title))

	// offsets 5 and 6 would land on the ellipsis in the shown text
	assert.Equal(t, map[int]bool{0: true, 3: true}, visibleOffsets([]int{0, 3, 5, 6}, limit))
}
