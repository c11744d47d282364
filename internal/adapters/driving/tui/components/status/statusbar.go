// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postliste/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateSearch  State = "search"
	StateResults State = "results"
	StateRecord  State = "record"
	StateHelp    State = "help"
)

// Bar displays the result position and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	page    domain.ResultPage
	sort    domain.SortKey
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		sort:   domain.DefaultSort,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading records...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateSearch, StateResults, StateRecord:
	}

	if s.page.TotalMatched == 0 {
		return s.styles.Muted.Render("No records")
	}
	return s.styles.Normal.Render(fmt.Sprintf("%s records · page %d of %d · %s",
		humanize.Comma(int64(s.page.TotalMatched)), s.page.Page, s.page.TotalPages, s.sort.Description()))
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateResults:
		bindings = s.keymap.ResultsHelp()
	case StateRecord, StateHelp:
		bindings = s.keymap.RecordHelp()
	case StateLoading, StateError, StateSearch:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetError switches to the error state with a message.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = ""
	if err != nil {
		s.message = err.Error()
	}
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// SetPage records the position shown on the left.
func (s *Bar) SetPage(page domain.ResultPage, sort domain.SortKey) {
	s.page = page
	s.sort = sort
}

// Page returns the page last set.
func (s *Bar) Page() domain.ResultPage {
	return s.page
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
