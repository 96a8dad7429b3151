package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Command flags
var (
	category    string
	columns     int
	noUpcoming  bool
	slideEvery  time.Duration
	browserFlag string
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse the TMDB movie catalog from your terminal",
	Long: `marquee is a terminal movie browser backed by The Movie Database.
It shows popular, top rated, upcoming and now playing movies, a top rated
carousel, and full catalog search.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")

	rootCmd.Flags().StringVarP(&category, "category", "c", "", "category to open on (popular, top_rated, upcoming, now_playing)")
	rootCmd.Flags().IntVar(&columns, "columns", 0, "movie cards per grid row (0 fits the width)")
	rootCmd.Flags().BoolVar(&noUpcoming, "no-upcoming", false, "hide the coming soon column")
	rootCmd.Flags().DurationVar(&slideEvery, "slide-interval", 0, "carousel auto-advance interval")
	rootCmd.Flags().StringVar(&browserFlag, "browser", "", "command used to open movie pages")

	rootCmd.AddCommand(setupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger, closeLog, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	// Fetches report the missing key in the UI; `marquee setup` fixes it
	if !cfg.IsConfigured() {
		logger.Warn("no TMDB API key configured", "config", adapter.ConfigFile())
	}

	client := tmdb.NewClient(cfg.ClientOptions(), logger)
	opener := adapter.NewOpener(cfg.UI.Browser, logger)

	model := tui.NewModel(tui.Options{
		Client:        client,
		Opener:        opener,
		Logger:        logger,
		Category:      domain.Category(cfg.UI.DefaultCategory),
		SlideInterval: cfg.UI.SlideInterval,
		GridColumns:   cfg.UI.GridColumns,
		ShowUpcoming:  cfg.UI.ShowUpcoming,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// applyFlags overrides config values with flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *adapter.Config) error {
	flags := cmd.Flags()
	if flags.Changed("category") {
		c, err := domain.ParseCategory(category)
		if err != nil {
			return err
		}
		cfg.UI.DefaultCategory = string(c)
	}
	if flags.Changed("columns") {
		cfg.UI.GridColumns = columns
	}
	if flags.Changed("no-upcoming") {
		cfg.UI.ShowUpcoming = !noUpcoming
	}
	if flags.Changed("slide-interval") {
		if slideEvery <= 0 {
			return fmt.Errorf("slide interval must be positive, got %s", slideEvery)
		}
		cfg.UI.SlideInterval = slideEvery
	}
	if flags.Changed("browser") {
		cfg.UI.Browser = browserFlag
	}
	return nil
}
