package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Inspector displays detailed metadata for the selected movie
type Inspector struct {
	movie  domain.Movie
	has    bool
	width  int
	height int
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetMovie sets the movie to display; ok=false clears it
func (i *Inspector) SetMovie(movie domain.Movie, ok bool) {
	i.movie = movie
	i.has = ok
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// HasMovie returns true if there is a movie to display
func (i Inspector) HasMovie() bool {
	return i.has
}

// View renders the component
func (i Inspector) View() string {
	contentWidth := max(i.width-BorderWidth-1, 10)
	innerHeight := max(i.height-BorderHeight, 1)

	var lines []string
	if !i.has {
		lines = append(lines, styles.DimStyle.Render("Nothing selected"))
	} else {
		lines = i.render(contentWidth)
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return styles.InactiveBorder.
		Width(contentWidth + 1).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

func (i Inspector) render(width int) []string {
	m := i.movie
	lines := []string{styles.TitleStyle.Render(styles.Truncate(m.Title, width))}
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(m.OriginalTitle, width)))
	}

	meta := fmt.Sprintf("%s · %s %s", format.ReleaseYear(m.ReleaseDate),
		styles.RenderRating(format.FormatRating(m.VoteAverage)),
		styles.DimStyle.Render(fmt.Sprintf("(%d votes)", m.VoteCount)))
	lines = append(lines, meta)

	if genres := format.GenreNames(m.GenreIDs); len(genres) > 0 {
		lines = append(lines, styles.AccentStyle.Render(styles.Truncate(strings.Join(genres, ", "), width)))
	}

	lines = append(lines, "")
	for _, l := range styles.Wrap(format.Synopsis(m.Overview, 0), width) {
		lines = append(lines, styles.SubtitleStyle.Render(l))
	}

	lines = append(lines, "",
		styles.DimStyle.Render("poster   ")+styles.Truncate(format.ResolveImageURL(m.PosterPath, domain.ImageW500), width-9),
		styles.DimStyle.Render("backdrop ")+styles.Truncate(format.ResolveImageURL(m.BackdropPath, domain.ImageW780), width-9),
		styles.DimStyle.Render("tmdb     ")+styles.Truncate(format.MoviePageURL(m.ID), width-9),
	)
	return lines
}
