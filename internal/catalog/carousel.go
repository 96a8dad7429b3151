package catalog

import (
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	// DefaultSlideInterval is the auto-advance period
	DefaultSlideInterval = 5 * time.Second

	// MaxSlides caps the carousel to the first page of top rated
	MaxSlides = 10
)

// NextIndex is (cur + 1) mod n
func NextIndex(cur, n int) int {
	if n <= 0 {
		return 0
	}
	return (cur + 1) % n
}

// PrevIndex is (cur - 1 + n) mod n
func PrevIndex(cur, n int) int {
	if n <= 0 {
		return 0
	}
	return (cur - 1 + n) % n
}

// Arm describes a periodic advance task the caller should schedule.
// Ticks carrying any other generation are ignored.
type Arm struct {
	Gen      uint64
	Interval time.Duration
}

// Carousel is the rotating slide state over a fixed slice of movies.
//
// The auto-advance task is scoped to a generation: changing the slides or
// calling Stop bumps it, which turns every outstanding tick into a no-op.
type Carousel struct {
	slides   []domain.Movie
	current  int
	gen      uint64
	armed    bool
	interval time.Duration
}

// NewCarousel creates an empty carousel. A non-positive interval uses
// DefaultSlideInterval.
func NewCarousel(interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultSlideInterval
	}
	return &Carousel{interval: interval}
}

// SetSlides replaces the slides. When the slide identity changes the
// position resets, the previous task is torn down, and a new one is
// returned if there is more than one slide to rotate through.
func (c *Carousel) SetSlides(movies []domain.Movie) (Arm, bool) {
	movies = capMovies(movies, MaxSlides)
	if sameSlides(c.slides, movies) {
		return Arm{}, false
	}

	c.slides = movies
	c.current = 0
	c.gen++
	c.armed = len(movies) > 1
	if !c.armed {
		return Arm{}, false
	}
	return Arm{Gen: c.gen, Interval: c.interval}, true
}

// Tick advances the carousel for a tick of generation gen and reports
// whether the task should be re-armed. Stale generations do nothing.
func (c *Carousel) Tick(gen uint64) bool {
	if !c.armed || gen != c.gen {
		return false
	}
	c.Next()
	return true
}

// Stop tears down the auto-advance task
func (c *Carousel) Stop() {
	c.gen++
	c.armed = false
}

// Next moves to the following slide, wrapping at the end
func (c *Carousel) Next() {
	if !c.CanNavigate() {
		return
	}
	c.current = NextIndex(c.current, len(c.slides))
}

// Prev moves to the preceding slide, wrapping at the start
func (c *Carousel) Prev() {
	if !c.CanNavigate() {
		return
	}
	c.current = PrevIndex(c.current, len(c.slides))
}

// CanNavigate reports whether manual prev/next are enabled
func (c *Carousel) CanNavigate() bool {
	return len(c.slides) > 1
}

// Current returns the focal slide
func (c *Carousel) Current() (domain.Movie, bool) {
	if len(c.slides) == 0 {
		return domain.Movie{}, false
	}
	return c.slides[c.current], true
}

// Neighbor returns the slide offset positions from the focal one,
// without wrapping.
func (c *Carousel) Neighbor(offset int) (domain.Movie, bool) {
	i := c.current + offset
	if i < 0 || i >= len(c.slides) {
		return domain.Movie{}, false
	}
	return c.slides[i], true
}

// Select passes the focal slide to fn. The position does not change.
func (c *Carousel) Select(fn func(domain.Movie)) {
	if fn == nil {
		return
	}
	if movie, ok := c.Current(); ok {
		fn(movie)
	}
}

func (c *Carousel) Index() int              { return c.current }
func (c *Carousel) Len() int                { return len(c.slides) }
func (c *Carousel) Armed() bool             { return c.armed }
func (c *Carousel) Gen() uint64             { return c.gen }
func (c *Carousel) Interval() time.Duration { return c.interval }

func sameSlides(a, b []domain.Movie) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
