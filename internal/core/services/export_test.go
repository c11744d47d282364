package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

func exportFixture() []domain.Record {
	return []domain.Record{
		{
			DocumentID:   "2024-001",
			Date:         "24.01.2025",
			Title:        "  Draft   report  ",
			DocumentType: "Utgående brev",
			Counterparty: `Ola "Budsjett" Nordmann`,
			Status:       "Publisert",
			JournalLink:  "https://example.org/j/1",
			DetailLink:   "https://example.org/d/1",
		},
		{
			DocumentID: "7",
			Title:      "Møtereferat",
			Status:     "Må bes om innsyn",
			DetailLink: "https://example.org/d/7",
		},
	}
}

func TestExportService_ToCSV_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	csv := NewExportService().ToCSV(exportFixture())

	g.Assert(t, "export_basic", []byte(csv))
}

func TestExportService_ToCSV_Escaping(t *testing.T) {
	csv := NewExportService().ToCSV(exportFixture()[:1])

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Draft report"`)
	assert.Contains(t, lines[1], `"Ola ""Budsjett"" Nordmann"`)
	assert.Contains(t, lines[1], `"https://example.org/j/1"`)
}

func TestExportService_ToCSV_HeaderOnly(t *testing.T) {
	csv := NewExportService().ToCSV(nil)

	assert.Equal(t, `"Date","DocumentID","Title","DocumentType","Counterparty","Status","Link"`, csv)
}

func TestExportService_ToCSV_NoTrailingNewline(t *testing.T) {
	csv := NewExportService().ToCSV(exportFixture())

	assert.False(t, strings.HasSuffix(csv, "\n"))
	assert.Equal(t, 2, strings.Count(csv, "\n"))
}

func TestExportService_ToCSV_TitleWhitespace(t *testing.T) {
	r := domain.Record{DocumentID: "1", Title: "\tLine one\n  line two "}

	csv := NewExportService().ToCSV([]domain.Record{r})

	assert.Contains(t, csv, `"Line one line two"`)
}

func TestExportService_WriteCSV_MatchesToCSV(t *testing.T) {
	svc := NewExportService()
	var buf bytes.Buffer

	err := svc.WriteCSV(&buf, exportFixture())

	require.NoError(t, err)
	assert.Equal(t, svc.ToCSV(exportFixture()), buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestExportService_WriteCSV_WriterError(t *testing.T) {
	err := NewExportService().WriteCSV(failingWriter{}, exportFixture())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
