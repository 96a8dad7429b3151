package catalog

import "github.com/mmcdole/marquee/internal/domain"

// Browse is the paginated fetch state for one category list
type Browse struct {
	category   domain.Category
	page       int
	limit      int
	mounted    bool
	movies     []domain.Movie
	totalPages int
	fetch      FetchState
}

// NewBrowse creates browse state for a category starting at page 1.
// limit caps how many movies are kept per page (0 keeps all).
func NewBrowse(category domain.Category, limit int) *Browse {
	return &Browse{category: category, page: 1, limit: limit}
}

// Mount issues the initial fetch for the current key
func (b *Browse) Mount() Request {
	b.mounted = true
	return b.begin()
}

// Load moves to (category, page). A request is returned only when the key
// changed or nothing was fetched yet. Bounds are the caller's concern.
func (b *Browse) Load(category domain.Category, page int) (Request, bool) {
	if b.mounted && category == b.category && page == b.page {
		return Request{}, false
	}
	b.category = category
	b.page = page
	b.mounted = true
	return b.begin(), true
}

// SetPage is Load with the current category
func (b *Browse) SetPage(page int) (Request, bool) {
	return b.Load(b.category, page)
}

// Retry re-issues the current key
func (b *Browse) Retry() Request {
	b.mounted = true
	return b.begin()
}

func (b *Browse) begin() Request {
	seq := b.fetch.Begin()
	return Request{Seq: seq, Kind: RequestCategory, Category: b.category, Page: b.page}
}

// Resolve applies the outcome of a request. It returns false, changing
// nothing, when seq is not the latest request issued by this instance.
// A failure keeps whatever was last fetched successfully.
func (b *Browse) Resolve(seq uint64, resp domain.PageResponse, err error) bool {
	if !b.fetch.IsCurrent(seq) {
		return false
	}
	if err != nil {
		b.fetch.Fail(domain.Message(err))
		return true
	}
	b.movies = capMovies(resp.Results, b.limit)
	b.totalPages = resp.TotalPages
	b.fetch.Succeed()
	return true
}

// Stop retires any in-flight request
func (b *Browse) Stop() {
	b.fetch.Invalidate()
}

func (b *Browse) Category() domain.Category { return b.category }
func (b *Browse) Page() int                 { return b.page }
func (b *Browse) TotalPages() int           { return b.totalPages }
func (b *Browse) Loading() bool             { return b.fetch.Loading() }
func (b *Browse) Err() string               { return b.fetch.Err() }
func (b *Browse) Fetch() FetchState         { return b.fetch }

// Movies returns a copy of the current page
func (b *Browse) Movies() []domain.Movie {
	return capMovies(b.movies, 0)
}

// HasPrev reports whether a previous page exists
func (b *Browse) HasPrev() bool { return b.page > 1 }

// HasNext reports whether a next page exists
func (b *Browse) HasNext() bool { return b.page < b.totalPages }
