package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/views/browse"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/views/record"
	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	// browseView owns the query state and result list.
	browseView *browse.View

	// recordView shows the opened record.
	recordView *record.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model and the keymap feeds the help view.
var (
	_ tea.Model   = (*App)(nil)
	_ help.KeyMap = (*keymap.KeyMap)(nil)
)

// NewApp creates a new TUI application with the given ports. The first
// query uses the configured page size and sort when Settings is set.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        h,
		recordView:  record.NewView(s),
		currentView: messages.ViewBrowse,
	}
	app.browseView = browse.NewView(s, km, ports.Query, app.baseQuery())
	return app, nil
}

func (a *App) baseQuery() domain.QueryState {
	if a.ports.Settings == nil {
		return domain.DefaultQueryState()
	}
	settings, err := a.ports.Settings.Get()
	if err != nil {
		logger.Warn("using default query settings: %v", err)
		return domain.DefaultQueryState()
	}
	return settings.BaseQuery()
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithState starts the session from state instead of the configured
// defaults, e.g. when opened from a share link.
func (a *App) WithState(state domain.QueryState) *App {
	a.browseView = browse.NewView(a.styles, a.keymap, a.ports.Query, state)
	if a.ready {
		a.browseView.SetDimensions(a.width, a.height)
	}
	return a
}

// Init implements tea.Model.
// It starts loading the dataset when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("postliste"),
		a.browseView.Init(),
		a.loadDataset(),
	)
}

func (a *App) loadDataset() tea.Cmd {
	return func() tea.Msg {
		ds, err := a.ports.Dataset.LoadRecords(a.ctx)
		return messages.DatasetLoaded{Dataset: ds, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.ForceQuit) {
			return a, tea.Quit
		}
		return a.handleKeyMsg(msg)

	case messages.DatasetLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("loading records: %v", msg.Err)
		} else {
			logger.Info("loaded %d records", msg.Dataset.Len())
		}
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.RecordSelected:
		a.recordView.SetRecord(msg.Record)
		a.currentView = messages.ViewRecord
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the active view
	if a.currentView == messages.ViewBrowse {
		a.browseView, cmd = a.browseView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	switch a.currentView {
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.ViewRecord:
		if keymap.Matches(key, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.recordView, cmd = a.recordView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		switch {
		case keymap.Matches(key, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(key, a.keymap.Back), keymap.Matches(key, a.keymap.Help):
			a.currentView = messages.ViewBrowse
		}
	}
	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewRecord:
		return a.recordView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewBrowse:
	}
	return a.browseView.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + "\n\n" +
		a.help.View(a.keymap) + "\n\n" +
		a.styles.Help.Render("[esc] back")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// State returns the current query state.
func (a *App) State() domain.QueryState {
	return a.browseView.State()
}

// Page returns the page currently shown.
func (a *App) Page() domain.ResultPage {
	return a.browseView.Page()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.browseView.SetDimensions(width, height)
	a.recordView.SetDimensions(width, height)
}
