package driving

import (
	"context"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// DatasetService loads the published data files.
type DatasetService interface {
	// LoadRecords fetches the record list (sharded or not) and merges it.
	// Any failure is fatal and matches domain.ErrLoad.
	LoadRecords(ctx context.Context) (*domain.Dataset, error)

	// LoadChangeEvents fetches the change log, newest first.
	LoadChangeEvents(ctx context.Context) ([]domain.ChangeEvent, error)
}
