// Package browse provides the main record browsing view for the TUI.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// View is the search box, active filters and result list.
// Every state change replaces the whole QueryState and re-runs the query.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RecordList
	statusbar *status.Bar

	queryService driving.QueryService
	dataset      *domain.Dataset

	base  domain.QueryState
	state domain.QueryState
	page  domain.ResultPage

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing in the search box, false = navigating results
}

// NewView creates a new browse view starting from base.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	queryService driving.QueryService,
	base domain.QueryState,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	base = base.Normalized()
	v := &View{
		styles:       s,
		keymap:       km,
		input:        input.NewSearchInput(s),
		list:         list.NewRecordList(s),
		statusbar:    status.NewBar(s, km),
		queryService: queryService,
		base:         base,
		state:        base,
		width:        80,
		height:       24,
		focusInput:   true,
	}
	v.input.SetValue(base.SearchText)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DatasetLoaded:
		if msg.Err != nil {
			v.SetError(msg.Err)
			return v, nil
		}
		v.SetDataset(msg.Dataset)
		return v, nil

	case messages.ErrorOccurred:
		v.SetError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd, _ = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if keymap.Matches(key, v.keymap.Focus) {
		v.toggleFocus()
		return v, nil
	}

	if v.focusInput {
		var cmd tea.Cmd
		var changed bool
		v.input, cmd, changed = v.input.Update(msg)
		if changed {
			v.apply(v.state.WithSearch(v.input.Value()))
		}
		if msg.Type == tea.KeyEnter && !v.list.IsEmpty() {
			v.toggleFocus()
		}
		return v, cmd
	}

	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(key, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(key, v.keymap.Select):
		if rec, ok := v.list.SelectedRecord(); ok {
			return v, func() tea.Msg { return messages.RecordSelected{Record: rec} }
		}
	case keymap.Matches(key, v.keymap.NextPage):
		if v.page.HasNext() {
			v.apply(v.state.WithPage(v.state.Page + 1))
		}
	case keymap.Matches(key, v.keymap.PrevPage):
		if v.page.HasPrev() {
			v.apply(v.state.WithPage(min(v.state.Page-1, v.page.TotalPages)))
		}
	case keymap.Matches(key, v.keymap.CycleStatus):
		v.apply(v.state.WithStatus(next(v.datasetValues(v.dataset.Statuses), v.state.Status)))
	case keymap.Matches(key, v.keymap.CycleType):
		v.apply(v.state.WithType(next(v.datasetValues(v.dataset.Types), v.state.Type)))
	case keymap.Matches(key, v.keymap.CycleSort):
		v.apply(v.state.WithSort(next(domain.SortKeys(), v.state.Sort)))
	case keymap.Matches(key, v.keymap.Reset):
		v.input.SetValue(v.base.SearchText)
		v.apply(v.base)
	default:
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

// datasetValues returns "" (no filter) followed by the distinct values.
func (v *View) datasetValues(values func() []string) []string {
	if v.dataset == nil {
		return []string{""}
	}
	return append([]string{""}, values()...)
}

// next returns the value after current, wrapping around. An unknown
// current value moves to the first entry.
func next[T comparable](values []T, current T) T {
	for i, val := range values {
		if val == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (v *View) toggleFocus() {
	v.focusInput = !v.focusInput
	if v.focusInput {
		v.input.Focus()
		v.statusbar.SetState(status.StateSearch)
		return
	}
	v.input.Blur()
	v.statusbar.SetState(status.StateResults)
}

// apply replaces the query state and re-runs the query.
func (v *View) apply(state domain.QueryState) {
	v.state = state
	v.refresh()
}

func (v *View) refresh() {
	if v.dataset == nil {
		return
	}
	if v.queryService == nil {
		v.SetError(ErrNoQueryService)
		return
	}
	v.page = v.queryService.Query(v.dataset, v.state)
	v.list.SetPage(v.page)
	v.statusbar.SetPage(v.page, v.state.Normalized().Sort)
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Postliste"), "", v.input.View())

	if chips := v.renderFilters(); chips != "" {
		sections = append(sections, chips)
	}
	sections = append(sections, "")

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.dataset == nil:
		sections = append(sections, v.styles.Muted.Render("Loading records..."))
	default:
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFilters shows one chip per active filter.
func (v *View) renderFilters() string {
	var chips []string
	if v.state.Type != "" {
		chips = append(chips, v.styles.Filter.Render("type: "+v.state.Type))
	}
	if v.state.Status != "" {
		chips = append(chips, v.styles.Filter.Render("status: "+v.state.Status))
	}
	if v.state.HasDateRange() {
		chips = append(chips, v.styles.Filter.Render(fmt.Sprintf("date: %s..%s",
			domain.FormatISODate(v.state.From), domain.FormatISODate(v.state.To))))
	}
	if len(chips) == 0 {
		return ""
	}
	return strings.Join(chips, " ")
}

// SetDataset installs the loaded dataset and runs the current query.
func (v *View) SetDataset(ds *domain.Dataset) {
	v.dataset = ds
	v.err = nil
	if v.focusInput {
		v.statusbar.SetState(status.StateSearch)
	} else {
		v.statusbar.SetState(status.StateResults)
	}
	v.refresh()
}

// SetError shows err in place of the results.
func (v *View) SetError(err error) {
	v.err = err
	v.statusbar.SetError(err)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input, filters, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// State returns the current query state.
func (v *View) State() domain.QueryState {
	return v.state
}

// Page returns the page last computed.
func (v *View) Page() domain.ResultPage {
	return v.page
}

// SelectedRecord returns the highlighted record.
func (v *View) SelectedRecord() (domain.Record, bool) {
	return v.list.SelectedRecord()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the search box has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
