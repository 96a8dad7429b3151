package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Layout constants for grid
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Padding(0,1) inside each card
	HorizontalPadding = 2

	// Lines of text in a card
	CardLines = 3

	// Title line plus pagination line
	GridChromeLines = 2

	MinCardWidth = 18
)

// GridAction is what a key press asked the grid's owner to do
type GridAction int

const (
	GridNone GridAction = iota
	GridSelect
	GridPrevPage
	GridNextPage
)

// Grid renders the composed main view as a grid of movie cards
type Grid struct {
	// Content
	movies  []domain.Movie
	results []search.Result // movies after the local filter
	kind    catalog.ViewKind
	title   string
	query   string
	loading bool
	err     string
	spinner string

	// Selection
	cursor  int
	offset  int // first visible row
	columns int

	// Dimensions
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool // typing in the filter input
	filterInput  textinput.Model
	filterQuery  string

	pager     paginator.Model
	showPager bool

	keys GridKeyMap
}

// NewGrid creates a new grid component. columns <= 0 picks a column count
// from the width.
func NewGrid(columns int) Grid {
	ti := textinput.New()
	ti.Placeholder = "title or genre..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = 1
	pager.ArabicFormat = "page %d of %d"

	return Grid{
		columns:     columns,
		filterInput: ti,
		pager:       pager,
		keys:        DefaultGridKeyMap(),
	}
}

// SetView replaces the grid content. The cursor resets only when the
// movies themselves changed.
func (g *Grid) SetView(v catalog.View) {
	if !sameMovies(g.movies, v.Movies) {
		g.cursor = 0
		g.offset = 0
	}
	g.movies = v.Movies
	g.kind = v.Kind
	g.title = v.Title
	g.query = v.Query
	g.loading = v.Loading
	g.err = v.Err

	g.showPager = v.ShowPagination
	g.pager.TotalPages = max(v.TotalPages, 1)
	g.pager.Page = max(v.Page-1, 0)

	g.applyFilter()
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.filterInput.Width = max(width-10, 10)
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// SetSpinner sets the current spinner frame
func (g *Grid) SetSpinner(frame string) {
	g.spinner = frame
}

// HandleKey processes a key press while the grid has focus
func (g *Grid) HandleKey(msg tea.KeyMsg) (GridAction, tea.Cmd) {
	if g.filterActive {
		return g.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, g.keys.Filter):
		g.filterActive = true
		g.filterInput.SetValue(g.filterQuery)
		return GridNone, g.filterInput.Focus()
	case key.Matches(msg, g.keys.Escape):
		g.ClearFilter()
	case key.Matches(msg, g.keys.Up):
		g.moveCursor(-g.cols())
	case key.Matches(msg, g.keys.Down):
		g.moveCursor(g.cols())
	case key.Matches(msg, g.keys.Left):
		g.moveCursor(-1)
	case key.Matches(msg, g.keys.Right):
		g.moveCursor(1)
	case key.Matches(msg, g.keys.Home):
		g.cursor = 0
		g.ensureVisible()
	case key.Matches(msg, g.keys.End):
		g.cursor = max(len(g.results)-1, 0)
		g.ensureVisible()
	case key.Matches(msg, g.keys.PrevPage):
		if g.CanPrevPage() {
			return GridPrevPage, nil
		}
	case key.Matches(msg, g.keys.NextPage):
		if g.CanNextPage() {
			return GridNextPage, nil
		}
	case key.Matches(msg, g.keys.Enter):
		if _, ok := g.Selected(); ok {
			return GridSelect, nil
		}
	}
	return GridNone, nil
}

func (g *Grid) handleFilterKey(msg tea.KeyMsg) (GridAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		g.ClearFilter()
		return GridNone, nil
	case "enter":
		// Keep the query, hand keys back to navigation
		g.filterActive = false
		g.filterInput.Blur()
		return GridNone, nil
	}

	var cmd tea.Cmd
	g.filterInput, cmd = g.filterInput.Update(msg)
	if g.filterInput.Value() != g.filterQuery {
		g.filterQuery = g.filterInput.Value()
		g.cursor = 0
		g.offset = 0
		g.applyFilter()
	}
	return GridNone, cmd
}

// ClearFilter drops the local filter
func (g *Grid) ClearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.applyFilter()
}

// Filtering reports whether the filter input is capturing keys
func (g Grid) Filtering() bool {
	return g.filterActive
}

// FilterQuery returns the active filter text
func (g Grid) FilterQuery() string {
	return g.filterQuery
}

// Visible returns the movies shown after filtering
func (g Grid) Visible() []search.Result {
	return g.results
}

// Cursor returns the selected index into Visible
func (g Grid) Cursor() int {
	return g.cursor
}

// Selected returns the movie under the cursor
func (g Grid) Selected() (domain.Movie, bool) {
	if g.cursor < 0 || g.cursor >= len(g.results) {
		return domain.Movie{}, false
	}
	return g.results[g.cursor].Movie, true
}

// CanPrevPage reports whether the previous page control is enabled
func (g Grid) CanPrevPage() bool {
	return g.showPager && !g.pager.OnFirstPage()
}

// CanNextPage reports whether the next page control is enabled
func (g Grid) CanNextPage() bool {
	return g.showPager && !g.pager.OnLastPage()
}

func (g *Grid) applyFilter() {
	g.results = search.Filter(g.filterQuery, g.movies)
	if g.cursor >= len(g.results) {
		g.cursor = max(len(g.results)-1, 0)
	}
	g.ensureVisible()
}

func (g *Grid) moveCursor(delta int) {
	if len(g.results) == 0 {
		return
	}
	next := g.cursor + delta
	if next < 0 || next >= len(g.results) {
		return
	}
	g.cursor = next
	g.ensureVisible()
}

// cols returns the effective column count
func (g Grid) cols() int {
	if g.columns > 0 {
		return g.columns
	}
	return max((g.width-BorderWidth)/MinCardWidth, 1)
}

// visibleRows returns how many card rows fit
func (g Grid) visibleRows() int {
	inner := g.height - BorderHeight - GridChromeLines
	if g.filterActive || g.filterQuery != "" {
		inner--
	}
	return max(inner/(CardLines+BorderHeight), 1)
}

func (g *Grid) ensureVisible() {
	row := g.cursor / g.cols()
	rows := g.visibleRows()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+rows {
		g.offset = row - rows + 1
	}
}

// View renders the component
func (g Grid) View() string {
	style := styles.InactiveBorder
	if g.focused {
		style = styles.ActiveBorder
	}

	innerWidth := max(g.width-BorderWidth, 10)
	innerHeight := max(g.height-BorderHeight, 1)

	lines := []string{g.renderTitle(innerWidth)}
	if g.filterActive || g.filterQuery != "" {
		lines = append(lines, g.renderFilter())
	}
	lines = append(lines, g.renderBody(innerWidth))
	if g.showPager {
		lines = append(lines, g.renderPager())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return style.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(g.height).
		Render(content)
}

func (g Grid) renderTitle(width int) string {
	title := styles.AccentStyle.Render(styles.Truncate(g.title, width-4))
	if g.loading {
		title += " " + g.spinner
	}
	return title
}

func (g Grid) renderFilter() string {
	if g.filterActive {
		return g.filterInput.View()
	}
	return styles.FilterStyle.Render(fmt.Sprintf("/ %s (%d of %d)", g.filterQuery, len(g.results), len(g.movies)))
}

func (g Grid) renderBody(width int) string {
	switch {
	case g.kind == catalog.ViewNoResults:
		return g.renderNoResults()
	case len(g.movies) == 0 && g.err != "":
		return styles.ErrorStyle.Render(g.err) + "\n" + styles.DimStyle.Render("press r to retry")
	case len(g.movies) == 0 && g.loading:
		return styles.DimStyle.Render(g.spinner + " Loading movies...")
	case len(g.movies) == 0:
		return styles.DimStyle.Render("No movies available")
	case len(g.results) == 0:
		return styles.DimStyle.Render("Nothing on this page matches the filter")
	}

	var body []string
	if g.err != "" {
		// Stale movies stay visible under the error
		body = append(body, styles.ErrorStyle.Render(styles.Truncate(g.err, width)))
	}

	cols := g.cols()
	cardWidth := max(width/cols-BorderWidth, 8)
	start := g.offset * cols
	end := min(start+g.visibleRows()*cols, len(g.results))

	for rowStart := start; rowStart < end; rowStart += cols {
		var cards []string
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			cards = append(cards, g.renderCard(g.results[i], i == g.cursor, cardWidth))
		}
		body = append(body, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body...)
}

func (g Grid) renderNoResults() string {
	if g.loading {
		return styles.DimStyle.Render(fmt.Sprintf("%s Searching for %q...", g.spinner, g.query))
	}
	lines := []string{styles.SubtitleStyle.Render(fmt.Sprintf("No movies found for %q", g.query))}
	if g.err != "" {
		lines = append(lines, styles.ErrorStyle.Render(g.err), styles.DimStyle.Render("press r to retry"))
	} else {
		lines = append(lines, styles.DimStyle.Render("esc to go back to browsing"))
	}
	return strings.Join(lines, "\n")
}

func (g Grid) renderCard(r search.Result, selected bool, width int) string {
	movie := r.Movie
	textWidth := max(width-HorizontalPadding, 4)

	shown := styles.Truncate(movie.Title, textWidth)
	title := highlight(shown, r.MatchedIndexes, keptBytes(movie.Title, shown))
	meta := fmt.Sprintf("%s · %s", format.ReleaseYear(movie.ReleaseDate),
		styles.RenderRating(format.FormatRating(movie.VoteAverage)))

	third := strings.Join(format.GenreNames(movie.GenreIDs), ", ")
	if r.Genre != "" {
		third = r.Genre
	}
	third = styles.DimStyle.Render(styles.Truncate(third, textWidth))

	style := styles.GridCellStyle
	if selected && g.focused {
		style = styles.GridCellSelectedStyle
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, meta, third))
}

func (g Grid) renderPager() string {
	prev := styles.PrevArrow + " prev"
	next := "next " + styles.NextArrow
	if g.CanPrevPage() {
		prev = styles.AccentStyle.Render(prev)
	} else {
		prev = styles.DimStyle.Render(prev)
	}
	if g.CanNextPage() {
		next = styles.AccentStyle.Render(next)
	} else {
		next = styles.DimStyle.Render(next)
	}
	return prev + "  " + styles.SubtitleStyle.Render(g.pager.View()) + "  " + next
}

// highlight styles the runes starting at the given byte offsets of s.
// Offsets at or past limit are ignored.
func highlight(s string, offsets []int, limit int) string {
	if len(offsets) == 0 {
		return styles.TitleStyle.Render(s)
	}
	set := visibleOffsets(offsets, limit)
	var b strings.Builder
	for i, r := range s {
		if set[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(styles.TitleStyle.Render(string(r)))
		}
	}
	return b.String()
}

func visibleOffsets(offsets []int, limit int) map[int]bool {
	set := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		if o < limit {
			set[o] = true
		}
	}
	return set
}

// keptBytes is how many leading bytes of title survive in its truncated
// form shown. Match offsets beyond it would land on the ellipsis.
func keptBytes(title, shown string) int {
	if shown == title {
		return len(title)
	}
	return len(strings.TrimSuffix(shown, "..."))
}

func sameMovies(a, b []domain.Movie) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
