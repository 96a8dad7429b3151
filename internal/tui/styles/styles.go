package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color palette
var (
	TMDBNavy   = lipgloss.Color("#0D253F")
	TMDBBlue   = lipgloss.Color("#01B4E4")
	TMDBGreen  = lipgloss.Color("#90CEA1")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Gold       = lipgloss.Color("#F5C518")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(TMDBBlue)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(TMDBBlue)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(TMDBGreen)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	LogoStyle = lipgloss.NewStyle().
			Foreground(TMDBNavy).
			Background(TMDBGreen).
			Bold(true).
			Padding(0, 1)
)

// Carousel indicator characters
const (
	ActiveDotChar   = "●"
	InactiveDotChar = "○"
	PrevArrow       = "‹"
	NextArrow       = "›"
	StarChar        = "★"
)

// Grid cell styles
var (
	GridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	GridCellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(TMDBBlue).
				Padding(0, 1)
)

// Search bar styles
var (
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(TMDBBlue).
				Bold(true)

	SearchTextStyle = lipgloss.NewStyle().
			Foreground(White)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(TMDBGreen)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(TMDBGreen).
				Bold(true)
)

// Match highlight style for filter results
var MatchHighlightStyle = lipgloss.NewStyle().
	Foreground(TMDBBlue).
	Bold(true)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(TMDBBlue)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(TMDBBlue)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Helper functions

// Truncate shortens s to the given display width with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad pads or cuts s to exactly the given display width
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// Wrap breaks text into lines of at most width display columns
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(Truncate(word, width))
		lineWidth += min(ww, width)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// RenderDots renders a position indicator like ○ ● ○ ○
func RenderDots(current, total int) string {
	if total <= 0 {
		return ""
	}
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = AccentStyle.Render(ActiveDotChar)
		} else {
			dots[i] = DimStyle.Render(InactiveDotChar)
		}
	}
	return strings.Join(dots, " ")
}

// RenderRating renders a ★ 7.3 badge for an already rounded rating
func RenderRating(rating float64) string {
	return RatingStyle.Render(StarChar + " " + strconv.FormatFloat(rating, 'f', -1, 64))
}
