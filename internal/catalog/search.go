package catalog

import (
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// Search is the fetch state behind explicit query submission.
// It never fetches on its own; only Submit starts a request.
type Search struct {
	query  string
	page   int
	limit  int
	movies []domain.Movie
	fetch  FetchState
}

// NewSearch creates an idle search state
func NewSearch(limit int) *Search {
	return &Search{limit: limit}
}

// Submit starts a search. A blank query clears results, retires any
// in-flight search, and issues nothing.
func (s *Search) Submit(query string, page int) (Request, bool) {
	if strings.TrimSpace(query) == "" {
		s.Clear()
		return Request{}, false
	}
	if page < 1 {
		page = 1
	}
	s.query = query
	s.page = page
	seq := s.fetch.Begin()
	return Request{Seq: seq, Kind: RequestSearch, Query: query, Page: page}, true
}

// Resolve applies a search outcome; stale sequences are ignored.
// Failure clears results since they belong to an older query.
func (s *Search) Resolve(seq uint64, resp domain.PageResponse, err error) bool {
	if !s.fetch.IsCurrent(seq) {
		return false
	}
	if err != nil {
		s.movies = nil
		s.fetch.Fail(domain.Message(err))
		return true
	}
	s.movies = capMovies(resp.Results, s.limit)
	s.fetch.Succeed()
	return true
}

// Clear drops results and query and retires any in-flight request
func (s *Search) Clear() {
	s.fetch.Invalidate()
	s.fetch.Reset()
	s.query = ""
	s.page = 0
	s.movies = nil
}

func (s *Search) Query() string     { return s.query }
func (s *Search) Page() int         { return s.page }
func (s *Search) Loading() bool     { return s.fetch.Loading() }
func (s *Search) Err() string       { return s.fetch.Err() }
func (s *Search) Fetch() FetchState { return s.fetch }

// Movies returns a copy of the current results
func (s *Search) Movies() []domain.Movie {
	return capMovies(s.movies, 0)
}
