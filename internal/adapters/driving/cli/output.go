package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"
)

// Output formats selected with --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const ellipsis = "…"

func isValidFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// outputFormatter writes command results as text, JSON or YAML.
type outputFormatter struct {
	format string
	w      io.Writer
}

func newOutputFormatter(w io.Writer) *outputFormatter {
	return &outputFormatter{format: outputFormat, w: w}
}

// write encodes data for json and yaml, and calls text otherwise.
func (f *outputFormatter) write(data any, text func(w io.Writer) error) error {
	switch f.format {
	case formatJSON:
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(f.w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(f.w)
	}
}

// truncateText shortens s to width cells, marking the cut with an ellipsis.
func truncateText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// orDash returns "-" for empty values in text tables.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
