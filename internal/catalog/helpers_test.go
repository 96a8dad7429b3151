package catalog

import (
	"fmt"

	"github.com/mmcdole/marquee/internal/domain"
)

func movies(n int) []domain.Movie {
	out := make([]domain.Movie, n)
	for i := range out {
		out[i] = domain.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)}
	}
	return out
}

func page(n, totalPages int) domain.PageResponse {
	return domain.PageResponse{Page: 1, Results: movies(n), TotalPages: totalPages, TotalResults: totalPages * 20}
}
