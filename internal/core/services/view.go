package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// Ensure ViewService implements the interface.
var _ driving.ViewService = (*ViewService)(nil)

// ViewService manages saved views.
type ViewService struct {
	store driven.ViewStore
	now   func() time.Time
}

// NewViewService creates a new view service.
func NewViewService(store driven.ViewStore) *ViewService {
	return &ViewService{
		store: store,
		now:   time.Now,
	}
}

// Save stores state under name. The state is normalised first.
func (s *ViewService) Save(ctx context.Context, name string, state domain.QueryState) (*domain.SavedView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: view name is required", domain.ErrInvalidInput)
	}

	existing, err := s.store.GetByName(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get view: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("view %q: %w", name, domain.ErrAlreadyExists)
	}

	view := domain.SavedView{
		ID:        uuid.New().String(),
		Name:      name,
		Query:     state.Normalized(),
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.store.Save(ctx, view); err != nil {
		return nil, fmt.Errorf("save view: %w", err)
	}
	return &view, nil
}

// Get retrieves a view by name.
func (s *ViewService) Get(ctx context.Context, name string) (*domain.SavedView, error) {
	return s.store.GetByName(ctx, strings.TrimSpace(name))
}

// List returns all saved views ordered by name.
func (s *ViewService) List(ctx context.Context) ([]domain.SavedView, error) {
	return s.store.List(ctx)
}

// Delete removes a view by name.
func (s *ViewService) Delete(ctx context.Context, name string) error {
	view, err := s.store.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, view.ID)
}
