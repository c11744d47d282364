package services

import (
	"testing"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

func rec(id, date, title, docType, status string) domain.Record {
	return domain.Record{
		DocumentID:   domain.DocumentID(id),
		Date:         date,
		Title:        title,
		DocumentType: docType,
		Status:       status,
	}
}

func newDataset(t *testing.T, records ...domain.Record) *domain.Dataset {
	t.Helper()
	ds, skipped := domain.NewDataset(records)
	if skipped != 0 {
		t.Fatalf("fixture has %d records without ID", skipped)
	}
	return ds
}

func ids(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.DocumentID.String()
	}
	return out
}

// sampleDataset is a small records log covering every filter dimension.
func sampleDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	counterparty := func(r domain.Record, c string) domain.Record {
		r.Counterparty = c
		return r
	}
	return newDataset(t,
		rec("1", "05.01.2024", "Budsjett 2024", "Inngående brev", "Publisert"),
		rec("2", "15.01.2024", "Søknad om tilskudd", "Utgående brev", "Må bes om innsyn"),
		counterparty(rec("3", "01.02.2024", "Referat fra møte", "Notat", "Publisert"), "Budsjettkontoret"),
		rec("4", "ukjent", "Årsrapport", "Inngående brev", "Publisert"),
		rec("5", "20.02.2024", "BUDSJETT revidert", "", "Må bes om innsyn"),
		rec("6", "01.03.2024", "Avtale", "Utgående brev", "Publisert"),
	)
}
