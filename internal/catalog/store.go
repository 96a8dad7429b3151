package catalog

import (
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

// UpcomingLimit is how many movies the coming-soon strip shows
const UpcomingLimit = 8

// Slot names the state instance a request belongs to
type Slot int

const (
	SlotBrowse Slot = iota
	SlotSearch
	SlotTopRated
	SlotUpcoming
)

func (s Slot) String() string {
	switch s {
	case SlotBrowse:
		return "browse"
	case SlotSearch:
		return "search"
	case SlotTopRated:
		return "top_rated"
	case SlotUpcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// Outcome reports what Resolve did with a result
type Outcome struct {
	Applied bool // false for stale results
	Arm     Arm  // valid when Rearm is set
	Rearm   bool // the carousel needs a fresh auto-advance task
}

// Store is the single owner of all catalog view state. The search bar, the
// grid, the carousel, and the coming-soon strip all read and write through
// it; nothing is relayed between components.
type Store struct {
	browse    *Browse
	search    *Search
	topRated  *Browse
	upcoming  *Browse
	carousel  *Carousel
	searching bool
}

// NewStore creates the store with the main grid on the given category
func NewStore(category domain.Category, slideInterval time.Duration) *Store {
	if !category.Valid() {
		category = domain.CategoryPopular
	}
	return &Store{
		browse:   NewBrowse(category, domain.PageSize),
		search:   NewSearch(domain.PageSize),
		topRated: NewBrowse(domain.CategoryTopRated, MaxSlides),
		upcoming: NewBrowse(domain.CategoryUpcoming, UpcomingLimit),
		carousel: NewCarousel(slideInterval),
	}
}

// Mount issues the initial fetches. The coming soon list is only
// fetched when it is shown.
func (s *Store) Mount(withUpcoming bool) []Request {
	reqs := []Request{
		stamp(s.browse.Mount(), SlotBrowse),
		stamp(s.topRated.Mount(), SlotTopRated),
	}
	if withUpcoming {
		reqs = append(reqs, stamp(s.upcoming.Mount(), SlotUpcoming))
	}
	return reqs
}

// SubmitSearch enters search mode for a non-blank query.
// A blank query is the same as ClearSearch.
func (s *Store) SubmitSearch(query string) (Request, bool) {
	req, ok := s.search.Submit(query, 1)
	if !ok {
		s.searching = false
		return Request{}, false
	}
	s.searching = true
	return stamp(req, SlotSearch), true
}

// ClearSearch leaves search mode and drops its results.
// This is the only way back to browsing.
func (s *Store) ClearSearch() {
	s.searching = false
	s.search.Clear()
}

// SetCategory switches the main grid to page 1 of category
func (s *Store) SetCategory(category domain.Category) (Request, bool) {
	req, ok := s.browse.Load(category, 1)
	return stamp(req, SlotBrowse), ok
}

// SetPage paginates the main grid
func (s *Store) SetPage(page int) (Request, bool) {
	req, ok := s.browse.SetPage(page)
	return stamp(req, SlotBrowse), ok
}

// Retry re-issues the fetch behind a slot
func (s *Store) Retry(slot Slot) (Request, bool) {
	switch slot {
	case SlotBrowse:
		return stamp(s.browse.Retry(), SlotBrowse), true
	case SlotTopRated:
		return stamp(s.topRated.Retry(), SlotTopRated), true
	case SlotUpcoming:
		return stamp(s.upcoming.Retry(), SlotUpcoming), true
	case SlotSearch:
		if !s.searching {
			return Request{}, false
		}
		req, ok := s.search.Submit(s.search.Query(), s.search.Page())
		return stamp(req, SlotSearch), ok
	}
	return Request{}, false
}

// Resolve routes a finished request to the state instance that issued it
func (s *Store) Resolve(req Request, resp domain.PageResponse, err error) Outcome {
	switch req.Slot {
	case SlotBrowse:
		return Outcome{Applied: s.browse.Resolve(req.Seq, resp, err)}
	case SlotSearch:
		return Outcome{Applied: s.search.Resolve(req.Seq, resp, err)}
	case SlotUpcoming:
		return Outcome{Applied: s.upcoming.Resolve(req.Seq, resp, err)}
	case SlotTopRated:
		if !s.topRated.Resolve(req.Seq, resp, err) {
			return Outcome{}
		}
		arm, ok := s.carousel.SetSlides(s.topRated.Movies())
		return Outcome{Applied: true, Arm: arm, Rearm: ok}
	}
	return Outcome{}
}

// Stop retires all in-flight requests and the carousel task
func (s *Store) Stop() {
	s.browse.Stop()
	s.topRated.Stop()
	s.upcoming.Stop()
	s.ClearSearch()
	s.carousel.Stop()
}

func (s *Store) Searching() bool     { return s.searching }
func (s *Store) Browse() *Browse     { return s.browse }
func (s *Store) Search() *Search     { return s.search }
func (s *Store) TopRated() *Browse   { return s.topRated }
func (s *Store) Upcoming() *Browse   { return s.upcoming }
func (s *Store) Carousel() *Carousel { return s.carousel }

func stamp(req Request, slot Slot) Request {
	req.Slot = slot
	return req
}
