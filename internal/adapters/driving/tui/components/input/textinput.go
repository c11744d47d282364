// Package input holds the search box of the records browser.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
)

const (
	maxQueryLength = 200
	defaultWidth   = 50

	// chrome is the label plus border and padding around the text.
	chrome   = 12
	minField = 20
)

// SearchInput is the free-text search box. Update reports whether a key
// press changed the text, so the browse view can re-query on every edit.
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
	width  int
}

// NewSearchInput returns a focused, empty search box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Prompt = ""
	field.Placeholder = "Search titles and counterparties..."
	field.CharLimit = maxQueryLength
	field.Width = defaultWidth
	field.Focus()

	return &SearchInput{field: field, styles: s, width: defaultWidth}
}

// Init starts the cursor blink.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text field.
func (s *SearchInput) Update(msg tea.Msg) (_ *SearchInput, cmd tea.Cmd, changed bool) {
	before := s.field.Value()
	s.field, cmd = s.field.Update(msg)
	return s, cmd, s.field.Value() != before
}

// View renders the label and the bordered field.
func (s *SearchInput) View() string {
	box := s.styles.InputField
	if s.field.Focused() {
		box = box.BorderForeground(s.styles.Palette().Accent)
	}
	//nolint:misspell // lipgloss.Center is the library's spelling
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.styles.Title.Render("Search "),
		box.Render(s.field.View()),
	)
}

func (s *SearchInput) Value() string { return s.field.Value() }

func (s *SearchInput) SetValue(v string) { s.field.SetValue(v) }

func (s *SearchInput) Focus() tea.Cmd { return s.field.Focus() }

func (s *SearchInput) Blur() { s.field.Blur() }

func (s *SearchInput) Focused() bool { return s.field.Focused() }

// SetWidth sets the total width; the field never shrinks below minField.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-chrome, minField)
}

func (s *SearchInput) Width() int { return s.width }

// Reset clears the text.
func (s *SearchInput) Reset() { s.field.Reset() }
