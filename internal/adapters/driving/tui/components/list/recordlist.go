// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postliste/internal/core/domain"
)

const (
	dateWidth   = 10
	typeWidth   = 18
	statusWidth = 14

	// rowChrome is the indicator plus the gaps between columns.
	rowChrome = 2 + 3*2
)

// RecordList displays one page of records as a navigable table.
type RecordList struct {
	page     domain.ResultPage
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			r.selected = max(len(r.page.Items)-1, 0)
		}
	}
	return r, nil
}

// View renders the visible window of the current page.
func (r *RecordList) View() string {
	if len(r.page.Items) == 0 {
		if r.page.TotalMatched > 0 {
			return r.styles.Muted.Render(fmt.Sprintf("Page %d is past the last page (%d)", r.page.Page, r.page.TotalPages))
		}
		return r.styles.Muted.Render("No records found")
	}

	visible := max(r.height-2, 1)
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.page.Items))

	lines := make([]string, 0, end-start+2)
	lines = append(lines, r.header(), "")
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, r.page.Items[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *RecordList) header() string {
	first := r.page.Offset() + 1
	last := r.page.Offset() + len(r.page.Items)
	return r.styles.Subtitle.Render(fmt.Sprintf("Records %d-%d of %d", first, last, r.page.TotalMatched))
}

func (r *RecordList) titleWidth() int {
	return max(r.width-rowChrome-dateWidth-typeWidth-statusWidth, 10)
}

func (r *RecordList) renderRecord(index int, rec domain.Record) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	date := rec.Date
	if t, ok := rec.ParsedDate(); ok {
		date = domain.FormatISODate(t)
	}

	title := rec.Title
	if title == "" {
		title = "(Untitled)"
	}

	cell := func(s string, width int) string {
		return fmt.Sprintf("%-*s", width, truncate.StringWithTail(s, uint(width), "…"))
	}

	row := indicator + cell(date, dateWidth) + "  " +
		cell(title, r.titleWidth()) + "  " +
		cell(rec.TypeLabel(), typeWidth) + "  "

	if index == r.selected {
		return r.styles.Selected.Render(row + cell(rec.Status, statusWidth))
	}
	return r.styles.Normal.Render(row) +
		r.styles.Status(rec.IsPublished()).Render(cell(rec.Status, statusWidth))
}

// SetPage replaces the displayed page and resets the selection.
func (r *RecordList) SetPage(page domain.ResultPage) {
	r.page = page
	r.selected = 0
}

// Page returns the displayed page.
func (r *RecordList) Page() domain.ResultPage {
	return r.page
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.page.Items) {
		r.selected = index
	}
}

// SelectedRecord returns the currently selected record.
func (r *RecordList) SelectedRecord() (domain.Record, bool) {
	if r.selected < 0 || r.selected >= len(r.page.Items) {
		return domain.Record{}, false
	}
	return r.page.Items[r.selected], true
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.page.Items)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *RecordList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RecordList) Height() int {
	return r.height
}

// Count returns the number of records on the page.
func (r *RecordList) Count() int {
	return len(r.page.Items)
}

// IsEmpty returns whether the page has no records.
func (r *RecordList) IsEmpty() bool {
	return len(r.page.Items) == 0
}
