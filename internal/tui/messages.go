package tui

import (
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error outside the fetch states
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg carries the outcome of a catalog request back to Update
type PageLoadedMsg struct {
	Req  catalog.Request
	Resp domain.PageResponse
	Err  error
}

// SlideTickMsg fires the carousel auto-advance for one generation
type SlideTickMsg struct {
	Gen uint64
}

// MovieOpenedMsg signals the movie page was handed to the browser
type MovieOpenedMsg struct {
	Movie domain.Movie
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	ID int
}
