package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ComingSoonSynopsisRunes is the synopsis length for each entry
const ComingSoonSynopsisRunes = 100

// ComingSoon renders the upcoming-releases side list
type ComingSoon struct {
	width   int
	height  int
	spinner string
}

// NewComingSoon creates the component
func NewComingSoon() ComingSoon {
	return ComingSoon{}
}

// SetSize updates the component dimensions
func (c *ComingSoon) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetSpinner sets the current spinner frame
func (c *ComingSoon) SetSpinner(frame string) {
	c.spinner = frame
}

// View renders the list for the given movies and fetch state
func (c ComingSoon) View(movies []domain.Movie, fetch catalog.FetchState) string {
	innerWidth := max(c.width-BorderWidth, 10)
	innerHeight := max(c.height-BorderHeight, 1)

	lines := []string{styles.AccentStyle.Render(domain.CategoryUpcoming.Label())}
	switch {
	case len(movies) == 0 && fetch.Loading():
		lines = append(lines, styles.DimStyle.Render(c.spinner+" Loading..."))
	case len(movies) == 0 && fetch.Failed():
		lines = append(lines, styles.ErrorStyle.Render(fetch.Err()))
	case len(movies) == 0:
		lines = append(lines, styles.DimStyle.Render("No upcoming movies"))
	default:
		used := 1
		for _, m := range movies {
			entry := c.renderEntry(m, innerWidth)
			h := lipgloss.Height(entry) + 1
			if used+h > innerHeight {
				break
			}
			lines = append(lines, "", entry)
			used += h
		}
	}

	return styles.InactiveBorder.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(c.height).
		Render(strings.Join(lines, "\n"))
}

func (c ComingSoon) renderEntry(m domain.Movie, width int) string {
	title := fmt.Sprintf("%s (%s)", m.Title, format.ReleaseYear(m.ReleaseDate))
	head := styles.TitleStyle.Render(styles.Truncate(title, width-8)) + " " +
		styles.RenderRating(format.FormatRating(m.VoteAverage))

	synopsis := styles.Wrap(format.Synopsis(m.Overview, ComingSoonSynopsisRunes), width)
	poster := styles.Truncate(format.ResolveImageURL(m.PosterPath, domain.ImageW300), width)

	return lipgloss.JoinVertical(lipgloss.Left,
		head,
		styles.SubtitleStyle.Render(strings.Join(synopsis, "\n")),
		styles.DimStyle.Render(poster),
	)
}
