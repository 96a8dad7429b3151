package domain

import "fmt"

// PageSize is the number of movies kept from each upstream page.
// TMDB returns 20 per page; the catalog only ever shows 10.
const PageSize = 10

// Category identifies a TMDB movie list endpoint
type Category string

const (
	CategoryPopular    Category = "popular"
	CategoryTopRated   Category = "top_rated"
	CategoryUpcoming   Category = "upcoming"
	CategoryNowPlaying Category = "now_playing"
)

// Categories lists every browsable category in display order
var Categories = []Category{
	CategoryPopular,
	CategoryTopRated,
	CategoryUpcoming,
	CategoryNowPlaying,
}

// ParseCategory converts a string into a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Label returns the section heading for the category
func (c Category) Label() string {
	switch c {
	case CategoryPopular:
		return "Popular Movies"
	case CategoryTopRated:
		return "Top Rated"
	case CategoryUpcoming:
		return "Coming Soon"
	case CategoryNowPlaying:
		return "Now Playing"
	default:
		return string(c)
	}
}

// ImageSize is a TMDB image CDN size segment
type ImageSize string

const (
	ImageW300     ImageSize = "w300"
	ImageW500     ImageSize = "w500"
	ImageW780     ImageSize = "w780"
	ImageOriginal ImageSize = "original"
)

// Movie is a catalog entry as returned by the remote API.
// Treat it as a value; nothing mutates a Movie after it is decoded.
type Movie struct {
	ID               int
	Title            string
	OriginalTitle    string
	Overview         string // may be empty
	PosterPath       string // relative asset path, empty if absent
	BackdropPath     string // relative asset path, empty if absent
	ReleaseDate      string // YYYY-MM-DD, may be empty
	VoteAverage      float64
	VoteCount        int
	GenreIDs         []int
	Popularity       float64
	OriginalLanguage string
	Adult            bool
	Video            bool
}

// PageResponse is one page of movies.
// len(Results) never exceeds PageSize.
type PageResponse struct {
	Page         int
	Results      []Movie
	TotalPages   int
	TotalResults int
}
