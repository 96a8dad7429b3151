// Package format holds the pure display helpers shared by every view:
// image URL resolution, rating rounding, and text shortening.
package format

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	// ImageBaseURL is the TMDB image CDN root
	ImageBaseURL = "https://image.tmdb.org/t/p"

	// MoviePageBaseURL is the public TMDB site
	MoviePageBaseURL = "https://www.themoviedb.org/movie"

	// PlaceholderImage is returned whenever a movie has no artwork
	PlaceholderImage = "/placeholder-movie.svg"

	noDescription = "Description not available."
	noYear        = "N/A"
)

// ResolveImageURL returns the CDN URL for an asset path at the given size.
// An empty path yields PlaceholderImage; an empty size means w500.
func ResolveImageURL(path string, size domain.ImageSize) string {
	if path == "" {
		return PlaceholderImage
	}
	if size == "" {
		size = domain.ImageW500
	}
	return ImageBaseURL + "/" + string(size) + path
}

// FormatRating rounds a vote average to one decimal place
func FormatRating(value float64) float64 {
	return math.Round(value*10) / 10
}

// ReleaseYear returns the year of an ISO release date, or "N/A"
func ReleaseYear(date string) string {
	if len(date) < 4 {
		return noYear
	}
	year := date[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return noYear
		}
	}
	return year
}

// Synopsis shortens an overview to limit runes followed by "...".
// Empty overviews read "Description not available."
func Synopsis(overview string, limit int) string {
	overview = strings.TrimSpace(overview)
	if overview == "" {
		return noDescription
	}
	if limit <= 0 || utf8.RuneCountInString(overview) <= limit {
		return overview
	}
	runes := []rune(overview)
	return string(runes[:limit]) + "..."
}

// GenreNames maps TMDB genre IDs to names, skipping unknown IDs
func GenreNames(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := domain.GenreName(id); ok {
			names = append(names, name)
		}
	}
	return names
}

// MoviePageURL is the public TMDB page for a movie id
func MoviePageURL(id int) string {
	return fmt.Sprintf("%s/%d", MoviePageBaseURL, id)
}
