package catalog

import "github.com/mmcdole/marquee/internal/domain"

// ViewMode is what the main area is showing: exactly one of BrowseMode or
// SearchMode.
type ViewMode interface {
	viewMode()
}

// BrowseMode shows a paginated category list
type BrowseMode struct {
	Category domain.Category
	Page     int
}

// SearchMode shows the results of a submitted query
type SearchMode struct {
	Query   string
	Results []domain.Movie
}

func (BrowseMode) viewMode() {}
func (SearchMode) viewMode() {}

// Mode returns the current view mode
func (s *Store) Mode() ViewMode {
	if s.searching {
		return SearchMode{Query: s.search.Query(), Results: s.search.Movies()}
	}
	return BrowseMode{Category: s.browse.Category(), Page: s.browse.Page()}
}

// ViewKind selects which branch of the main area renders
type ViewKind int

const (
	ViewBrowse ViewKind = iota
	ViewSearchResults
	ViewNoResults
)

func (k ViewKind) String() string {
	switch k {
	case ViewBrowse:
		return "browse"
	case ViewSearchResults:
		return "search_results"
	case ViewNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// View is the composed, render-ready main area
type View struct {
	Kind           ViewKind
	Title          string
	Query          string
	Movies         []domain.Movie
	Loading        bool
	Err            string
	Page           int
	TotalPages     int
	ShowPagination bool
}

// Compose merges browse and search state into the single main view:
//  1. searching with results: search grid, no pagination
//  2. searching without results: the no-results branch, never the browse grid
//  3. otherwise: the category browse grid with pagination
func (s *Store) Compose() View {
	switch mode := s.Mode().(type) {
	case SearchMode:
		v := View{
			Query:   mode.Query,
			Movies:  mode.Results,
			Loading: s.search.Loading(),
			Err:     s.search.Err(),
			Page:    1,
		}
		if len(mode.Results) > 0 {
			v.Kind = ViewSearchResults
			v.Title = "Results for \"" + mode.Query + "\""
		} else {
			v.Kind = ViewNoResults
			v.Title = "No movies found"
		}
		return v

	case BrowseMode:
		return View{
			Kind:           ViewBrowse,
			Title:          mode.Category.Label(),
			Movies:         s.browse.Movies(),
			Loading:        s.browse.Loading(),
			Err:            s.browse.Err(),
			Page:           mode.Page,
			TotalPages:     s.browse.TotalPages(),
			ShowPagination: s.browse.TotalPages() > 1,
		}
	}
	return View{}
}
