package driving

import (
	"context"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// ViewService manages saved views.
type ViewService interface {
	// Save stores state under name. Names are unique.
	Save(ctx context.Context, name string, state domain.QueryState) (*domain.SavedView, error)

	// Get retrieves a view by name.
	Get(ctx context.Context, name string) (*domain.SavedView, error)

	// List returns all saved views.
	List(ctx context.Context) ([]domain.SavedView, error)

	// Delete removes a view by name.
	Delete(ctx context.Context, name string) error
}
