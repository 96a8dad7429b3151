package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

// RequestTimeout bounds a single catalog request
const RequestTimeout = 30 * time.Second

// Command factories for async operations

// FetchCmd executes a catalog request. ctx is cancelled when a newer request
// supersedes this one; the result is still delivered and discarded as stale.
func FetchCmd(ctx context.Context, client domain.CatalogClient, req catalog.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()

		var (
			resp domain.PageResponse
			err  error
		)
		switch req.Kind {
		case catalog.RequestSearch:
			resp, err = client.SearchByQuery(ctx, req.Query, req.Page)
		default:
			resp, err = client.FetchByCategory(ctx, req.Category, req.Page)
		}
		return PageLoadedMsg{Req: req, Resp: resp, Err: err}
	}
}

// SlideTickCmd schedules one carousel advance
func SlideTickCmd(arm catalog.Arm) tea.Cmd {
	return tea.Tick(arm.Interval, func(time.Time) tea.Msg {
		return SlideTickMsg{Gen: arm.Gen}
	})
}

// OpenMovieCmd opens the movie's page through the opener
func OpenMovieCmd(opener domain.Opener, movie domain.Movie) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(movie); err != nil {
			return ErrMsg{Err: err, Context: "opening " + movie.Title}
		}
		return MovieOpenedMsg{Movie: movie}
	}
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
