package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Focus is the pane receiving navigation keys
type Focus int

const (
	FocusGrid Focus = iota
	FocusCarousel
	FocusSearch
)

// Layout proportions
const (
	SearchBarHeight   = 3
	FooterHeight      = 1
	SideColumnPercent = 32
	MinSideWidth      = 28

	statusTimeout = 3 * time.Second
)

// Options configures a Model
type Options struct {
	Client        domain.CatalogClient
	Opener        domain.Opener
	Logger        *slog.Logger
	Category      domain.Category
	SlideInterval time.Duration
	GridColumns   int
	ShowUpcoming  bool
}

// pending is an in-flight request and the cancel func of its context
type pending struct {
	req    catalog.Request
	cancel context.CancelFunc
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Shared view state; every pane reads and writes through it
	store *catalog.Store

	// Services
	client domain.CatalogClient
	opener domain.Opener
	logger *slog.Logger

	ctx      context.Context
	stop     context.CancelFunc
	inflight map[catalog.Slot]pending

	// UI Components
	SearchBar components.SearchBar
	Grid      components.Grid
	Slider    components.Slider
	Upcoming  components.ComingSoon
	Inspector components.Inspector
	Help      help.Model
	Spinner   spinner.Model

	// UI state
	Focus         Focus
	ShowUpcoming  bool
	ShowInspector bool
	ShowHelp      bool
	StatusMsg     string
	StatusIsErr   bool
	statusID      int

	// Dimensions
	Width  int
	Height int
	Ready  bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	ctx, stop := context.WithCancel(context.Background())

	m := Model{
		store:        catalog.NewStore(opts.Category, opts.SlideInterval),
		client:       opts.Client,
		opener:       opts.Opener,
		logger:       logger,
		ctx:          ctx,
		stop:         stop,
		inflight:     make(map[catalog.Slot]pending),
		SearchBar:    components.NewSearchBar(),
		Grid:         components.NewGrid(opts.GridColumns),
		Slider:       components.NewSlider(),
		Upcoming:     components.NewComingSoon(),
		Inspector:    components.NewInspector(),
		Help:         h,
		Spinner:      sp,
		ShowUpcoming: opts.ShowUpcoming,
	}
	m.setFocus(FocusGrid)
	return m
}

// Store exposes the shared view state
func (m Model) Store() *catalog.Store {
	return m.store
}

// Init issues the initial fetches
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick}
	for _, req := range m.store.Mount(m.ShowUpcoming) {
		cmds = append(cmds, m.fetch(req))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		m.syncComponents()
		return m, cmd

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case SlideTickMsg:
		c := m.store.Carousel()
		if !c.Tick(msg.Gen) {
			return m, nil
		}
		m.syncComponents()
		return m, SlideTickCmd(catalog.Arm{Gen: msg.Gen, Interval: c.Interval()})

	case MovieOpenedMsg:
		return m, m.setStatus("Opened "+msg.Movie.Title+" in the browser", false)

	case ErrMsg:
		m.logger.Error("action failed", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		if msg.ID == m.statusID {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// handlePageLoaded resolves a finished request against the store
func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	m.settle(msg.Req)

	out := m.store.Resolve(msg.Req, msg.Resp, msg.Err)
	if !out.Applied {
		m.logger.Debug("discarded stale response", "slot", msg.Req.Slot, "seq", msg.Req.Seq)
		return m, nil
	}

	if msg.Err != nil {
		m.logger.Error("catalog request failed",
			"slot", msg.Req.Slot, "category", msg.Req.Category, "query", msg.Req.Query,
			"page", msg.Req.Page, "error", msg.Err)
	} else {
		m.logger.Debug("catalog page loaded",
			"slot", msg.Req.Slot, "page", msg.Req.Page, "results", len(msg.Resp.Results))
	}

	m.syncComponents()
	if out.Rearm {
		return m, SlideTickCmd(out.Arm)
	}
	return m, nil
}

// fetch starts a request, cancelling whatever its slot had in flight
func (m *Model) fetch(req catalog.Request) tea.Cmd {
	if m.client == nil {
		return nil
	}
	m.cancelSlot(req.Slot)

	ctx, cancel := context.WithCancel(m.ctx)
	m.inflight[req.Slot] = pending{req: req, cancel: cancel}
	m.logger.Debug("fetching", "slot", req.Slot, "seq", req.Seq,
		"category", req.Category, "query", req.Query, "page", req.Page)
	return FetchCmd(ctx, m.client, req)
}

// settle releases the context of a finished request
func (m *Model) settle(req catalog.Request) {
	if p, ok := m.inflight[req.Slot]; ok && p.req.Seq == req.Seq {
		p.cancel()
		delete(m.inflight, req.Slot)
	}
}

func (m *Model) cancelSlot(slot catalog.Slot) {
	if p, ok := m.inflight[slot]; ok {
		p.cancel()
		delete(m.inflight, slot)
	}
}

// shutdown stops the carousel task and cancels every request
func (m *Model) shutdown() {
	m.store.Stop()
	for slot := range m.inflight {
		m.cancelSlot(slot)
	}
	m.stop()
}

// syncComponents pushes store state into the components
func (m *Model) syncComponents() {
	frame := m.Spinner.View()

	m.Grid.SetView(m.store.Compose())
	m.Grid.SetSpinner(frame)
	m.Slider.SetSpinner(frame)
	m.Upcoming.SetSpinner(frame)
	m.SearchBar.SetLoading(m.store.Search().Loading(), frame)
	m.syncInspector()
}

// syncInspector shows the movie under the focused pane's cursor
func (m *Model) syncInspector() {
	if m.Focus == FocusCarousel {
		m.Inspector.SetMovie(m.store.Carousel().Current())
		return
	}
	m.Inspector.SetMovie(m.Grid.Selected())
}

// setStatus shows a temporary status message
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusID++
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusID, statusTimeout)
}
