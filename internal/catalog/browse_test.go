package catalog

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseMountAndSuccess(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)

	req := b.Mount()
	assert.Equal(t, RequestCategory, req.Kind)
	assert.Equal(t, domain.CategoryPopular, req.Category)
	assert.Equal(t, 1, req.Page)
	assert.True(t, b.Loading())

	require.True(t, b.Resolve(req.Seq, page(10, 50), nil))

	assert.False(t, b.Loading())
	assert.Empty(t, b.Err())
	assert.Len(t, b.Movies(), 10)
	assert.Equal(t, 50, b.TotalPages())
	assert.True(t, b.Fetch().Ready())
}

func TestBrowseCapsToLimit(t *testing.T) {
	b := NewBrowse(domain.CategoryUpcoming, 8)
	req := b.Mount()
	b.Resolve(req.Seq, page(10, 3), nil)

	assert.Len(t, b.Movies(), 8)
}

func TestBrowseFailureKeepsStaleMovies(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)
	req := b.Mount()
	b.Resolve(req.Seq, page(10, 50), nil)

	req, ok := b.SetPage(2)
	require.True(t, ok)
	assert.Empty(t, b.Err())

	b.Resolve(req.Seq, domain.PageResponse{}, &domain.HTTPError{StatusCode: 401})

	assert.False(t, b.Loading())
	assert.NotEmpty(t, b.Err())
	assert.True(t, b.Fetch().Failed())
	assert.Len(t, b.Movies(), 10)
	assert.Equal(t, 2, b.Page())
}

func TestBrowseFailureFromEmpty(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)
	req := b.Mount()
	b.Resolve(req.Seq, domain.PageResponse{}, domain.ErrMissingAPIKey)

	assert.Equal(t, domain.ErrMissingAPIKey.Error(), b.Err())
	assert.Empty(t, b.Movies())
}

func TestBrowseLoadOnlyOnKeyChange(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)

	first, ok := b.Load(domain.CategoryPopular, 1)
	require.True(t, ok, "first load mounts")

	_, ok = b.Load(domain.CategoryPopular, 1)
	assert.False(t, ok)

	second, ok := b.Load(domain.CategoryTopRated, 1)
	require.True(t, ok)
	assert.Greater(t, second.Seq, first.Seq)

	third, ok := b.SetPage(4)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryTopRated, third.Category)
	assert.Equal(t, 4, third.Page)
}

func TestBrowseDiscardsStaleResponses(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)
	older := b.Mount()
	newer, _ := b.SetPage(2)

	newerPage := page(10, 50)
	newerPage.Page = 2
	require.True(t, b.Resolve(newer.Seq, newerPage, nil))

	// The page 1 response arrives last and must not win
	assert.False(t, b.Resolve(older.Seq, page(3, 50), nil))
	assert.Len(t, b.Movies(), 10)
	assert.Equal(t, 2, b.Page())

	// An older failure is ignored too
	assert.False(t, b.Resolve(older.Seq, domain.PageResponse{}, domain.ErrMissingAPIKey))
	assert.Empty(t, b.Err())
}

func TestBrowseRetry(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)
	req := b.Mount()
	b.Resolve(req.Seq, domain.PageResponse{}, domain.ErrMissingAPIKey)

	retry := b.Retry()
	assert.Equal(t, req.Category, retry.Category)
	assert.Equal(t, req.Page, retry.Page)
	assert.True(t, b.Loading())
	assert.Empty(t, b.Err(), "entering loading clears the error")
}

func TestBrowseBounds(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)
	req := b.Mount()
	b.Resolve(req.Seq, page(10, 2), nil)

	assert.False(t, b.HasPrev())
	assert.True(t, b.HasNext())

	req, _ = b.SetPage(2)
	b.Resolve(req.Seq, page(10, 2), nil)
	assert.True(t, b.HasPrev())
	assert.False(t, b.HasNext())
}

func TestBrowseMoviesAreCopies(t *testing.T) {
	b := NewBrowse(domain.CategoryPopular, domain.PageSize)
	req := b.Mount()
	b.Resolve(req.Seq, page(2, 1), nil)

	got := b.Movies()
	got[0].Title = "changed"
	assert.Equal(t, "Movie 1", b.Movies()[0].Title)
}

func TestFetchStateExclusive(t *testing.T) {
	var f FetchState
	check := func() {
		n := 0
		for _, v := range []bool{f.Loading(), f.Failed(), f.Ready()} {
			if v {
				n++
			}
		}
		assert.LessOrEqual(t, n, 1, "status %s", f.Status())
	}

	check()
	seq := f.Begin()
	check()
	f.Fail("boom")
	check()
	assert.True(t, f.IsCurrent(seq))
	f.Begin()
	check()
	assert.Empty(t, f.Err())
	assert.False(t, f.IsCurrent(seq))
	f.Succeed()
	check()
	f.Invalidate()
	assert.True(t, f.Ready(), "invalidate leaves a finished state alone")
}
