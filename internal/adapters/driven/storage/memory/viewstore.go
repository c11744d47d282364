package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
)

// Ensure ViewStore implements the interface.
var _ driven.ViewStore = (*ViewStore)(nil)

// ViewStore is an in-memory implementation of driven.ViewStore.
type ViewStore struct {
	mu    sync.RWMutex
	views map[string]domain.SavedView
}

// NewViewStore creates a new in-memory view store.
func NewViewStore() *ViewStore {
	return &ViewStore{
		views: make(map[string]domain.SavedView),
	}
}

// Save stores or updates a view.
func (s *ViewStore) Save(_ context.Context, view domain.SavedView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[view.ID] = view
	return nil
}

// Get retrieves a view by ID.
func (s *ViewStore) Get(_ context.Context, id string) (*domain.SavedView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view, ok := s.views[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &view, nil
}

// GetByName retrieves a view by name.
func (s *ViewStore) GetByName(_ context.Context, name string) (*domain.SavedView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, view := range s.views {
		if view.Name == name {
			v := view
			return &v, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all views ordered by name.
func (s *ViewStore) List(_ context.Context) ([]domain.SavedView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.SavedView, 0, len(s.views))
	for _, view := range s.views {
		result = append(result, view)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a view.
func (s *ViewStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, id)
	return nil
}
