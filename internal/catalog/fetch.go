// Package catalog holds the view-state machines behind the browser: paginated
// category browsing, explicit search, the top-rated carousel, and the store
// that composes them into a single rendered view.
//
// Nothing here performs I/O. Each transition that needs data returns a
// Request; the caller executes it and reports back through Resolve with the
// request's sequence number. Results for anything but the latest sequence are
// discarded, so out-of-order responses can never overwrite newer state.
package catalog

import "github.com/mmcdole/marquee/internal/domain"

// Status is the phase of a FetchState
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request is a fetch the caller must execute on behalf of a state machine
type Request struct {
	Seq      uint64
	Slot     Slot
	Kind     RequestKind
	Category domain.Category // category requests only
	Query    string          // search requests only
	Page     int
}

// RequestKind distinguishes category fetches from searches
type RequestKind int

const (
	RequestCategory RequestKind = iota
	RequestSearch
)

// FetchState tracks one asynchronous fetch slot.
// At most one of Loading, Failed, Ready holds at any time.
type FetchState struct {
	status Status
	err    string
	seq    uint64
}

// Begin enters loading, clears the previous error, and issues a new sequence
func (f *FetchState) Begin() uint64 {
	f.seq++
	f.status = StatusLoading
	f.err = ""
	return f.seq
}

// Invalidate retires any in-flight request without starting a new one
func (f *FetchState) Invalidate() {
	f.seq++
	if f.status == StatusLoading {
		f.status = StatusIdle
	}
}

// IsCurrent reports whether seq is the latest issued request
func (f *FetchState) IsCurrent(seq uint64) bool {
	return seq != 0 && seq == f.seq
}

// Succeed marks the fetch as finished with data
func (f *FetchState) Succeed() {
	f.status = StatusReady
	f.err = ""
}

// Fail marks the fetch as finished with an error message
func (f *FetchState) Fail(msg string) {
	f.status = StatusFailed
	f.err = msg
}

// Reset returns to idle with no error
func (f *FetchState) Reset() {
	f.status = StatusIdle
	f.err = ""
}

func (f FetchState) Status() Status { return f.status }
func (f FetchState) Loading() bool  { return f.status == StatusLoading }
func (f FetchState) Ready() bool    { return f.status == StatusReady }
func (f FetchState) Failed() bool   { return f.status == StatusFailed }
func (f FetchState) Err() string    { return f.err }
func (f FetchState) Seq() uint64    { return f.seq }

// capMovies copies at most limit movies so callers never share backing arrays
func capMovies(movies []domain.Movie, limit int) []domain.Movie {
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	out := make([]domain.Movie, len(movies))
	copy(out, movies)
	return out
}
