package driving

import (
	"io"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// ExportService formats records for download.
type ExportService interface {
	// ToCSV returns records as CSV text.
	ToCSV(records []domain.Record) string

	// WriteCSV writes the same CSV text to w.
	WriteCSV(w io.Writer, records []domain.Record) error
}
