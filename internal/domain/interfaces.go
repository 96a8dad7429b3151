package domain

import "context"

// CatalogClient reads movie pages from the remote catalog
type CatalogClient interface {
	// FetchByCategory returns one page of a category list
	FetchByCategory(ctx context.Context, category Category, page int) (PageResponse, error)

	// SearchByQuery returns one page of title search results.
	// A blank query yields an empty page without a network call.
	SearchByQuery(ctx context.Context, query string, page int) (PageResponse, error)
}

// Opener hands a movie to something outside the terminal (a browser)
type Opener interface {
	Open(movie Movie) error
}
