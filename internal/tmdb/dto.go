package tmdb

// PageDTO is the envelope of every paginated TMDB movie list
type PageDTO struct {
	Page         int        `json:"page"`
	Results      []MovieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// MovieDTO is a movie as it appears in list and search results.
// Image paths are null when TMDB has no artwork.
type MovieDTO struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}
