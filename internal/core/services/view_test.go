package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/postliste/internal/core/domain"
)

func newTestViewService() (*ViewService, *memory.ViewStore) {
	store := memory.NewViewStore()
	svc := NewViewService(store)
	svc.now = func() time.Time { return time.Date(2025, 1, 24, 6, 0, 12, 500, time.UTC) }
	return svc, store
}

func TestViewService_Save(t *testing.T) {
	svc, store := newTestViewService()
	ctx := context.Background()
	state := domain.DefaultQueryState().WithSearch("budsjett").WithStatus("Publisert").WithPage(3)

	view, err := svc.Save(ctx, "  budget  ", state)

	require.NoError(t, err)
	assert.Equal(t, "budget", view.Name)
	_, err = uuid.Parse(view.ID)
	assert.NoError(t, err)
	assert.Equal(t, state.Normalized(), view.Query)
	assert.Equal(t, time.Date(2025, 1, 24, 6, 0, 12, 0, time.UTC), view.CreatedAt)

	stored, err := store.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, *view, *stored)
}

func TestViewService_Save_EmptyName(t *testing.T) {
	svc, _ := newTestViewService()

	_, err := svc.Save(context.Background(), " ", domain.DefaultQueryState())

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestViewService_Save_DuplicateName(t *testing.T) {
	svc, _ := newTestViewService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "budget", domain.DefaultQueryState())
	require.NoError(t, err)

	_, err = svc.Save(ctx, "budget", domain.DefaultQueryState().WithSearch("x"))

	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestViewService_GetListDelete(t *testing.T) {
	svc, _ := newTestViewService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "zeta", domain.DefaultQueryState())
	require.NoError(t, err)
	saved, err := svc.Save(ctx, "alpha", domain.DefaultQueryState().WithType("Notat"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Notat", got.Query.Type)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alpha", views[0].Name)

	require.NoError(t, svc.Delete(ctx, "alpha"))
	_, err = svc.Get(ctx, "alpha")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViewService_Delete_Missing(t *testing.T) {
	svc, _ := newTestViewService()

	err := svc.Delete(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type brokenViewStore struct {
	memory.ViewStore
}

func (*brokenViewStore) GetByName(context.Context, string) (*domain.SavedView, error) {
	return nil, errors.New("database is locked")
}

func TestViewService_Save_StoreError(t *testing.T) {
	svc := NewViewService(&brokenViewStore{})

	_, err := svc.Save(context.Background(), "budget", domain.DefaultQueryState())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.NotErrorIs(t, err, domain.ErrAlreadyExists)
}
