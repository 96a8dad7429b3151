package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/format"
)

// Opener opens a movie's TMDB page in a web browser.
// It implements domain.Opener.
type Opener struct {
	command string   // configured browser command, empty for system default
	args    []string // arguments placed before the URL
	logger  *slog.Logger

	// start launches a process without waiting for it
	start func(name string, args ...string) error
	// lookPath reports whether a command is on PATH
	lookPath func(name string) (string, error)
}

// NewOpener creates an Opener. command may carry arguments, e.g.
// "firefox --new-tab".
func NewOpener(command string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	fields := strings.Fields(command)
	o := &Opener{
		logger:   logger,
		start:    startProcess,
		lookPath: exec.LookPath,
	}
	if len(fields) > 0 {
		o.command = fields[0]
		o.args = fields[1:]
	}
	return o
}

// Open launches the movie's page
func (o *Opener) Open(movie domain.Movie) error {
	if movie.ID <= 0 {
		return fmt.Errorf("cannot open movie %q: no id", movie.Title)
	}
	url := format.MoviePageURL(movie.ID)

	// Tier 1: user configured a specific browser
	if o.command != "" {
		if _, err := o.lookPath(o.command); err != nil {
			return fmt.Errorf("browser %q not found: %w", o.command, err)
		}
		args := append(append([]string{}, o.args...), url)
		o.logger.Info("opening movie page", "command", o.command, "url", url, "movie_id", movie.ID)
		return o.start(o.command, args...)
	}

	// Tier 2: system default handler
	name, args := defaultCommand(runtime.GOOS, url)
	o.logger.Info("opening movie page with system default", "os", runtime.GOOS, "url", url, "movie_id", movie.ID)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// defaultCommand returns the system URL handler for goos
func defaultCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}

func startProcess(name string, args ...string) error {
	return exec.Command(name, args...).Start() // don't wait
}
