package tmdb

import "github.com/mmcdole/marquee/internal/domain"

// MapPage converts a page envelope, keeping at most limit results
func MapPage(p PageDTO, limit int) domain.PageResponse {
	results := p.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return domain.PageResponse{
		Page:         p.Page,
		Results:      MapMovies(results),
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

// MapMovies converts a slice of movie DTOs
func MapMovies(dtos []MovieDTO) []domain.Movie {
	movies := make([]domain.Movie, 0, len(dtos))
	for _, d := range dtos {
		movies = append(movies, MapMovie(d))
	}
	return movies
}

// MapMovie converts a single movie DTO
func MapMovie(d MovieDTO) domain.Movie {
	var genres []int
	if len(d.GenreIDs) > 0 {
		genres = make([]int, len(d.GenreIDs))
		copy(genres, d.GenreIDs)
	}
	return domain.Movie{
		ID:               d.ID,
		Title:            d.Title,
		OriginalTitle:    d.OriginalTitle,
		Overview:         d.Overview,
		PosterPath:       deref(d.PosterPath),
		BackdropPath:     deref(d.BackdropPath),
		ReleaseDate:      d.ReleaseDate,
		VoteAverage:      d.VoteAverage,
		VoteCount:        d.VoteCount,
		GenreIDs:         genres,
		Popularity:       d.Popularity,
		OriginalLanguage: d.OriginalLanguage,
		Adult:            d.Adult,
		Video:            d.Video,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
