package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SliderHeight is the fixed rendered height, border included
const SliderHeight = 8

const sliderSynopsisRunes = 180

// SliderAction is what a key press asked the carousel's owner to do
type SliderAction int

const (
	SliderNone SliderAction = iota
	SliderPrev
	SliderNext
	SliderSelect
)

// Slider renders the top-rated carousel. It holds no slide state of its
// own; position and timer live in catalog.Carousel.
type Slider struct {
	width   int
	focused bool
	spinner string
	keys    SliderKeyMap
}

// NewSlider creates a slider component
func NewSlider() Slider {
	return Slider{keys: DefaultSliderKeyMap()}
}

// SetWidth updates the component width
func (s *Slider) SetWidth(width int) {
	s.width = width
}

// SetFocused sets the focus state
func (s *Slider) SetFocused(focused bool) {
	s.focused = focused
}

// SetSpinner sets the current spinner frame
func (s *Slider) SetSpinner(frame string) {
	s.spinner = frame
}

// HandleKey maps a key press to a carousel action
func (s Slider) HandleKey(msg tea.KeyMsg) SliderAction {
	switch {
	case key.Matches(msg, s.keys.Prev):
		return SliderPrev
	case key.Matches(msg, s.keys.Next):
		return SliderNext
	case key.Matches(msg, s.keys.Enter):
		return SliderSelect
	}
	return SliderNone
}

// View renders the carousel
func (s Slider) View(c *catalog.Carousel, fetch catalog.FetchState) string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}
	innerWidth := max(s.width-BorderWidth, 20)
	innerHeight := SliderHeight - BorderHeight

	header := styles.AccentStyle.Render(domain.CategoryTopRated.Label())
	if c.Len() > 1 {
		header += "  " + styles.RenderDots(c.Index(), c.Len())
	}

	var body string
	switch {
	case c.Len() == 0 && fetch.Loading():
		body = styles.DimStyle.Render(s.spinner + " Loading top rated...")
	case c.Len() == 0 && fetch.Failed():
		body = styles.ErrorStyle.Render(fetch.Err()) + "\n" + styles.DimStyle.Render("press r to retry")
	case c.Len() == 0:
		body = styles.DimStyle.Render("No movies available")
	default:
		body = s.renderSlide(c, innerWidth)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return style.Width(innerWidth).Height(innerHeight).MaxHeight(SliderHeight).Render(content)
}

func (s Slider) renderSlide(c *catalog.Carousel, width int) string {
	movie, _ := c.Current()

	// Side titles flank the focal slide at a fifth of the width each
	sideWidth := width / 5
	focalWidth := width - 2*sideWidth - 4

	left := ""
	if prev, ok := c.Neighbor(-1); ok {
		left = prev.Title
	}
	right := ""
	if next, ok := c.Neighbor(1); ok {
		right = next.Title
	}

	prevArrow, nextArrow := " ", " "
	if c.CanNavigate() {
		prevArrow = styles.AccentStyle.Render(styles.PrevArrow)
		nextArrow = styles.AccentStyle.Render(styles.NextArrow)
	}

	title := fmt.Sprintf("%s (%s)", movie.Title, format.ReleaseYear(movie.ReleaseDate))
	focal := styles.TitleStyle.Render(styles.Truncate(title, focalWidth-8)) + " " +
		styles.RenderRating(format.FormatRating(movie.VoteAverage))

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		prevArrow, " ",
		styles.DimStyle.Render(styles.Pad(styles.Truncate(left, sideWidth), sideWidth)),
		lipgloss.NewStyle().Width(focalWidth).Align(lipgloss.Center).Render(focal),
		styles.DimStyle.Render(styles.Pad(styles.Truncate(right, sideWidth), sideWidth)),
		" ", nextArrow,
	)

	synopsis := styles.Wrap(format.Synopsis(movie.Overview, sliderSynopsisRunes), width)
	if len(synopsis) > 3 {
		synopsis = synopsis[:3]
	}

	lines := []string{row}
	lines = append(lines, styles.SubtitleStyle.Render(strings.Join(synopsis, "\n")))
	lines = append(lines, styles.DimStyle.Render(styles.Truncate(
		format.ResolveImageURL(movie.BackdropPath, domain.ImageW780), width)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
