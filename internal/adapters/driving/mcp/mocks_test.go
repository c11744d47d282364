package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/services"
)

// mockDatasetService is a mock implementation of driving.DatasetService.
type mockDatasetService struct {
	records []domain.Record
	events  []domain.ChangeEvent
	err     error
	loads   int
}

func (m *mockDatasetService) LoadRecords(_ context.Context) (*domain.Dataset, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	ds, _ := domain.NewDataset(m.records)
	return ds, nil
}

func (m *mockDatasetService) LoadChangeEvents(_ context.Context) ([]domain.ChangeEvent, error) {
	return m.events, m.err
}

func testRecords() []domain.Record {
	return []domain.Record{
		{DocumentID: "1", Date: "05.01.2024", Title: "Budsjett 2024", DocumentType: "Inngående brev", Status: "Publisert",
			JournalLink: "https://example.org/journal/1", Files: []domain.Attachment{{Text: "Brev", URL: "https://example.org/1.pdf"}}},
		{DocumentID: "2", Date: "20.01.2024", Title: "Revidert budsjett", DocumentType: "Notat", Status: "Må bes om innsyn"},
		{DocumentID: "3", Date: "03.02.2024", Title: "Avtale", DocumentType: "Utgående brev", Status: "Publisert"},
	}
}

func testEvents() []domain.ChangeEvent {
	return []domain.ChangeEvent{
		{Timestamp: "2024-02-04 06:00:00", Type: "endret", DocumentID: "3", Title: "Avtale",
			Changes: map[string]domain.FieldChange{"status": {Old: "Må bes om innsyn", New: "Publisert"}, "filer": {Old: nil, New: float64(1)}}},
		{Timestamp: "2024-02-03 06:00:00", Type: "ny", DocumentID: "3", Title: "Avtale"},
		{Timestamp: "2024-01-20 06:00:00", Type: "ny", DocumentID: "2", Title: "Revidert budsjett"},
	}
}

// newTestServer creates a server over the test records with real query
// and stats services.
func newTestServer(t *testing.T, dataset *mockDatasetService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{
		Dataset: dataset,
		Query:   services.NewQueryEngine(),
		Stats:   services.NewStatsService(),
	})
	require.NoError(t, err)
	return server
}
