package catalog

import (
	"testing"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountedStore(t *testing.T) (*Store, map[Slot]Request) {
	t.Helper()
	s := NewStore(domain.CategoryPopular, time.Second)
	reqs := make(map[Slot]Request)
	for _, r := range s.Mount(true) {
		reqs[r.Slot] = r
	}
	require.Len(t, reqs, 3)
	return s, reqs
}

func TestStoreMount(t *testing.T) {
	_, reqs := mountedStore(t)

	assert.Equal(t, domain.CategoryPopular, reqs[SlotBrowse].Category)
	assert.Equal(t, domain.CategoryTopRated, reqs[SlotTopRated].Category)
	assert.Equal(t, domain.CategoryUpcoming, reqs[SlotUpcoming].Category)
}

func TestStoreMountWithoutUpcoming(t *testing.T) {
	s := NewStore(domain.CategoryPopular, time.Second)
	reqs := s.Mount(false)

	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.NotEqual(t, SlotUpcoming, r.Slot)
	}
	assert.False(t, s.Upcoming().Fetch().Loading(), "hidden list stays idle")
}

func TestStoreInvalidCategoryFallsBack(t *testing.T) {
	s := NewStore(domain.Category("bogus"), 0)
	assert.Equal(t, domain.CategoryPopular, s.Browse().Category())
}

func TestStoreComposeBrowse(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Resolve(reqs[SlotBrowse], page(10, 50), nil)

	v := s.Compose()
	assert.Equal(t, ViewBrowse, v.Kind)
	assert.Equal(t, "Popular Movies", v.Title)
	assert.Len(t, v.Movies, 10)
	assert.True(t, v.ShowPagination)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 50, v.TotalPages)
	assert.IsType(t, BrowseMode{}, s.Mode())
}

func TestStoreComposeSearchResults(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Resolve(reqs[SlotBrowse], page(10, 50), nil)

	req, ok := s.SubmitSearch("matrix")
	require.True(t, ok)
	assert.Equal(t, SlotSearch, req.Slot)
	assert.True(t, s.Searching())

	s.Resolve(req, page(4, 1), nil)

	v := s.Compose()
	assert.Equal(t, ViewSearchResults, v.Kind)
	assert.False(t, v.ShowPagination)
	assert.Len(t, v.Movies, 4)

	mode, ok := s.Mode().(SearchMode)
	require.True(t, ok)
	assert.Equal(t, "matrix", mode.Query)
	assert.Len(t, mode.Results, 4)
}

func TestStoreComposeNoResultsNeverShowsBrowse(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Resolve(reqs[SlotBrowse], page(10, 50), nil)

	req, _ := s.SubmitSearch("zzzzqqq")

	// Still loading: no-results branch, flagged as loading
	v := s.Compose()
	assert.Equal(t, ViewNoResults, v.Kind)
	assert.True(t, v.Loading)
	assert.Empty(t, v.Movies)

	s.Resolve(req, domain.PageResponse{Page: 1}, nil)
	v = s.Compose()
	assert.Equal(t, ViewNoResults, v.Kind)
	assert.False(t, v.Loading)
	assert.Empty(t, v.Err)
}

func TestStoreSearchErrorComposesNoResultsWithMessage(t *testing.T) {
	s, _ := mountedStore(t)
	req, _ := s.SubmitSearch("alien")
	s.Resolve(req, domain.PageResponse{}, &domain.HTTPError{StatusCode: 401})

	v := s.Compose()
	assert.Equal(t, ViewNoResults, v.Kind)
	assert.NotEmpty(t, v.Err)
}

func TestStoreClearSearchReturnsToBrowse(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Resolve(reqs[SlotBrowse], page(10, 50), nil)

	req, _ := s.SubmitSearch("alien")
	s.ClearSearch()

	assert.False(t, s.Searching())
	assert.Equal(t, ViewBrowse, s.Compose().Kind)

	// Late search response can't resurrect search mode
	out := s.Resolve(req, page(3, 1), nil)
	assert.False(t, out.Applied)
	assert.Equal(t, ViewBrowse, s.Compose().Kind)
	assert.Empty(t, s.Search().Movies())
}

func TestStoreBlankSubmitClears(t *testing.T) {
	s, _ := mountedStore(t)
	s.SubmitSearch("alien")

	_, ok := s.SubmitSearch("  ")
	assert.False(t, ok)
	assert.False(t, s.Searching())
	assert.IsType(t, BrowseMode{}, s.Mode())
}

func TestStoreTopRatedArmsCarousel(t *testing.T) {
	s, reqs := mountedStore(t)

	out := s.Resolve(reqs[SlotTopRated], page(20, 400), nil)
	require.True(t, out.Applied)
	require.True(t, out.Rearm)
	assert.Equal(t, time.Second, out.Arm.Interval)
	assert.Equal(t, MaxSlides, s.Carousel().Len())

	// Main grid is independent of the carousel's source
	assert.Empty(t, s.Browse().Movies())
}

func TestStoreTopRatedSingleMovieDoesNotArm(t *testing.T) {
	s, reqs := mountedStore(t)
	out := s.Resolve(reqs[SlotTopRated], page(1, 1), nil)

	assert.True(t, out.Applied)
	assert.False(t, out.Rearm)
	assert.False(t, s.Carousel().CanNavigate())
}

func TestStoreSetCategoryAndPage(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Resolve(reqs[SlotBrowse], page(10, 50), nil)

	req, ok := s.SetPage(3)
	require.True(t, ok)
	assert.Equal(t, SlotBrowse, req.Slot)
	assert.Equal(t, 3, req.Page)

	req, ok = s.SetCategory(domain.CategoryNowPlaying)
	require.True(t, ok)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, domain.CategoryNowPlaying, req.Category)
}

func TestStoreRetry(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Resolve(reqs[SlotUpcoming], domain.PageResponse{}, domain.ErrMissingAPIKey)

	req, ok := s.Retry(SlotUpcoming)
	require.True(t, ok)
	assert.Equal(t, SlotUpcoming, req.Slot)
	assert.True(t, s.Upcoming().Loading())

	_, ok = s.Retry(SlotSearch)
	assert.False(t, ok, "nothing to retry outside search mode")

	first, _ := s.SubmitSearch("alien")
	s.Resolve(first, domain.PageResponse{}, domain.ErrMissingAPIKey)
	again, ok := s.Retry(SlotSearch)
	require.True(t, ok)
	assert.Equal(t, "alien", again.Query)
}

func TestStoreStop(t *testing.T) {
	s, reqs := mountedStore(t)
	s.Stop()

	for _, r := range reqs {
		assert.False(t, s.Resolve(r, page(5, 1), nil).Applied, "slot %s", r.Slot)
	}
}

func TestStoreStopLeavesSearchMode(t *testing.T) {
	s, _ := mountedStore(t)
	_, ok := s.SubmitSearch("alien")
	require.True(t, ok)

	s.Stop()

	assert.False(t, s.Searching())
	assert.Equal(t, ViewBrowse, s.Compose().Kind)
}
