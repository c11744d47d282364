package driven

import (
	"context"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// ViewStore persists saved views.
type ViewStore interface {
	// Save stores or updates a view by ID.
	Save(ctx context.Context, view domain.SavedView) error

	// Get retrieves a view by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.SavedView, error)

	// GetByName retrieves a view by its unique name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.SavedView, error)

	// List returns all views ordered by name.
	List(ctx context.Context) ([]domain.SavedView, error)

	// Delete removes a view by ID. Deleting a missing view is not an error.
	Delete(ctx context.Context, id string) error
}
