package services

import (
	"bufio"
	"io"
	"strings"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// DefaultExportFileName is the file name offered for CSV downloads.
const DefaultExportFileName = "postliste.csv"

var csvHeader = []string{"Date", "DocumentID", "Title", "DocumentType", "Counterparty", "Status", "Link"}

// ExportService formats records as CSV.
//
// Every field is quoted, whether or not it needs to be, and rows are
// separated by a bare "\n" with no newline after the last row. This
// matches the download produced by the records browser.
type ExportService struct{}

// NewExportService creates a new export service.
func NewExportService() *ExportService {
	return &ExportService{}
}

// ToCSV returns records as CSV text, header first.
func (s *ExportService) ToCSV(records []domain.Record) string {
	var b strings.Builder
	_ = s.write(&b, records)
	return b.String()
}

// WriteCSV writes the same text as ToCSV to w.
func (s *ExportService) WriteCSV(w io.Writer, records []domain.Record) error {
	bw := bufio.NewWriter(w)
	if err := s.write(bw, records); err != nil {
		return err
	}
	return bw.Flush()
}

type stringWriter interface {
	WriteString(s string) (int, error)
}

func (s *ExportService) write(w stringWriter, records []domain.Record) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	row := make([]string, len(csvHeader))
	for i := range records {
		r := &records[i]
		row[0] = r.Date
		row[1] = r.DocumentID.String()
		row[2] = strings.Join(strings.Fields(r.Title), " ")
		row[3] = r.DocumentType
		row[4] = r.Counterparty
		row[5] = r.Status
		row[6] = r.Link()

		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w stringWriter, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := w.WriteString(","); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return nil
}
