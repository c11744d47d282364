// Package styles holds the colour palette and lipgloss styles of the
// records browser.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette names the colours the browser draws with.
type Palette struct {
	Accent    lipgloss.Color // titles, focused input border
	Highlight lipgloss.Color // subtitles, filter chips
	Surface   lipgloss.Color
	Bar       lipgloss.Color // status bar background
	Text      lipgloss.Color
	Dim       lipgloss.Color

	// Published and Restricted colour the two record statuses.
	Published  lipgloss.Color
	Restricted lipgloss.Color

	Failure lipgloss.Color
	Edge    lipgloss.Color
}

// DefaultPalette is a dark palette with a blue accent.
func DefaultPalette() *Palette {
	return &Palette{
		Accent:     "#3B82F6",
		Highlight:  "#22D3EE",
		Surface:    "#111827",
		Bar:        "#1F2937",
		Text:       "#E5E7EB",
		Dim:        "#9CA3AF",
		Published:  "#4ADE80",
		Restricted: "#FBBF24",
		Failure:    "#F87171",
		Edge:       "#4B5563",
	}
}

// Styles are the rendered styles built from a palette.
type Styles struct {
	palette *Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	// Success and Warning render published and access-restricted records.
	Success lipgloss.Style
	Warning lipgloss.Style

	// Label is the fixed-width field name column of the record view.
	Label lipgloss.Style

	// Filter renders an active filter as a chip.
	Filter lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles builds styles from p, or from DefaultPalette when p is nil.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	rounded := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Edge)

	return &Styles{
		palette:    p,
		Title:      fg(p.Accent).Bold(true),
		Subtitle:   fg(p.Highlight).Bold(true),
		Normal:     fg(p.Text),
		Muted:      fg(p.Dim),
		Selected:   fg(p.Text).Background(p.Accent).Bold(true),
		Error:      fg(p.Failure),
		Success:    fg(p.Published),
		Warning:    fg(p.Restricted),
		Label:      fg(p.Dim).Bold(true).Width(14),
		Filter:     fg(p.Surface).Background(p.Highlight).Padding(0, 1),
		InputField: rounded.Padding(0, 1),
		StatusBar:  fg(p.Dim).Background(p.Bar).Padding(0, 1),
		Help:       fg(p.Dim),
		Border:     rounded,
	}
}

// DefaultStyles returns styles for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Palette returns the colours these styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// Status picks the style for a record status.
func (s *Styles) Status(published bool) lipgloss.Style {
	if published {
		return s.Success
	}
	return s.Warning
}
