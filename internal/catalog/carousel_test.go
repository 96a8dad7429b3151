package catalog

import (
	"testing"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCyclic(t *testing.T) {
	for n := 1; n <= 12; n++ {
		cur := 0
		for i := 0; i < n; i++ {
			cur = NextIndex(cur, n)
		}
		assert.Equal(t, 0, cur, "n=%d", n)

		for start := 0; start < n; start++ {
			assert.Equal(t, start, PrevIndex(NextIndex(start, n), n), "n=%d start=%d", n, start)
			assert.Equal(t, start, NextIndex(PrevIndex(start, n), n), "n=%d start=%d", n, start)
		}
	}

	assert.Equal(t, 4, PrevIndex(0, 5))
	assert.Equal(t, 0, NextIndex(0, 0))
}

func TestCarouselWrapsBothWays(t *testing.T) {
	c := NewCarousel(0)
	c.SetSlides(movies(3))

	c.Prev()
	assert.Equal(t, 2, c.Index())
	c.Next()
	c.Next()
	assert.Equal(t, 1, c.Index())

	for i := 0; i < 3; i++ {
		c.Next()
	}
	assert.Equal(t, 1, c.Index())
}

func TestCarouselSingleSlide(t *testing.T) {
	c := NewCarousel(time.Second)

	_, armed := c.SetSlides(movies(1))
	assert.False(t, armed)
	assert.False(t, c.CanNavigate())
	assert.False(t, c.Armed())

	c.Next()
	c.Prev()
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Tick(c.Gen()))
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(0)
	_, armed := c.SetSlides(nil)
	assert.False(t, armed)

	_, ok := c.Current()
	assert.False(t, ok)

	called := false
	c.Select(func(domain.Movie) { called = true })
	assert.False(t, called)
}

func TestCarouselArmAndTick(t *testing.T) {
	c := NewCarousel(0)

	arm, ok := c.SetSlides(movies(4))
	require.True(t, ok)
	assert.Equal(t, DefaultSlideInterval, arm.Interval)

	assert.True(t, c.Tick(arm.Gen))
	assert.Equal(t, 1, c.Index())
}

func TestCarouselCapsSlides(t *testing.T) {
	c := NewCarousel(0)
	c.SetSlides(movies(20))
	assert.Equal(t, MaxSlides, c.Len())
}

func TestCarouselRearmOnIdentityChange(t *testing.T) {
	c := NewCarousel(0)
	first, _ := c.SetSlides(movies(4))
	c.Tick(first.Gen)

	// Same slides: nothing changes, old task keeps running
	_, ok := c.SetSlides(movies(4))
	assert.False(t, ok)
	assert.Equal(t, 1, c.Index())

	replacement := movies(5)
	replacement[0].ID = 99
	second, ok := c.SetSlides(replacement)
	require.True(t, ok)
	assert.NotEqual(t, first.Gen, second.Gen)
	assert.Equal(t, 0, c.Index())

	assert.False(t, c.Tick(first.Gen), "ticks from the previous task are inert")
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.Tick(second.Gen))
}

func TestCarouselStop(t *testing.T) {
	c := NewCarousel(0)
	arm, _ := c.SetSlides(movies(3))

	c.Stop()
	assert.False(t, c.Armed())
	assert.False(t, c.Tick(arm.Gen))
	assert.Equal(t, 0, c.Index())
}

func TestCarouselSelectKeepsPosition(t *testing.T) {
	c := NewCarousel(0)
	c.SetSlides(movies(3))
	c.Next()

	var got domain.Movie
	c.Select(func(m domain.Movie) { got = m })

	assert.Equal(t, 2, got.ID)
	assert.Equal(t, 1, c.Index())
}

func TestCarouselNeighbors(t *testing.T) {
	c := NewCarousel(0)
	c.SetSlides(movies(3))

	_, ok := c.Neighbor(-1)
	assert.False(t, ok, "no wrap for side posters")

	next, ok := c.Neighbor(1)
	require.True(t, ok)
	assert.Equal(t, 2, next.ID)
}
