// Package record provides the single record view for the TUI.
package record

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postliste/internal/core/domain"
)

// View shows every field of one record.
type View struct {
	styles *styles.Styles

	record       domain.Record
	loaded       bool
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new record view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetRecord sets the record to display.
func (v *View) SetRecord(rec domain.Record) {
	v.record = rec
	v.loaded = true
	v.scrollOffset = 0
}

// Record returns the displayed record.
func (v *View) Record() (domain.Record, bool) {
	return v.record, v.loaded
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the record view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			if v.scrollOffset < v.maxScrollOffset() {
				v.scrollOffset++
			}
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewBrowse}
			}
		}
	}
	return v, nil
}

func (v *View) visibleLines() int {
	// title, separator, help and padding
	return max(v.height-6, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

func (v *View) buildContent() []string {
	if !v.loaded {
		return nil
	}
	rec := v.record

	date := rec.Date
	if t, ok := rec.ParsedDate(); ok {
		date = domain.FormatISODate(t)
	}

	lines := []string{
		v.field("Document ID", rec.DocumentID.String()),
		v.field("Date", date),
		v.field("Type", rec.TypeLabel()),
		v.styles.Label.Render("Status") + v.styles.Status(rec.IsPublished()).Render(orDash(rec.Status)),
		v.field("Counterparty", rec.Counterparty),
		v.field("Link", rec.Link()),
	}

	if len(rec.Files) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render(fmt.Sprintf("Files (%d)", len(rec.Files))))
		for _, f := range rec.Files {
			lines = append(lines, "  "+v.styles.Normal.Render(orDash(f.Text)), "    "+v.styles.Muted.Render(f.URL))
		}
	}
	if !rec.IsPublished() {
		lines = append(lines, "", v.styles.Warning.Render("Files are not published. Request access through the journal link."))
	}
	return lines
}

func (v *View) field(label, value string) string {
	return v.styles.Label.Render(label) + v.styles.Normal.Render(orDash(value))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// View renders the record view.
func (v *View) View() string {
	var b strings.Builder

	title := "Record"
	if v.loaded && v.record.Title != "" {
		title = v.record.Title
	}
	b.WriteString(v.styles.Title.Render(wordwrap.String(title, max(v.width-4, 20))))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 0), 60)))
	b.WriteString("\n\n")

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("No record selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(lines))
	for _, line := range lines[v.scrollOffset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]", v.scrollOffset+1, end, len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
