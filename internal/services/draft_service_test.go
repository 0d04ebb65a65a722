package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"archbudget/internal/engine"
	"archbudget/internal/repositories"
)

type fakeDraftStore struct {
	drafts map[string]engine.Draft
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]engine.Draft)}
}

func (f *fakeDraftStore) StoreDraft(_ context.Context, userID string, draft engine.Draft) error {
	f.drafts[userID] = draft
	return nil
}

func (f *fakeDraftStore) GetDraft(_ context.Context, userID string) (engine.Draft, error) {
	draft, ok := f.drafts[userID]
	if !ok {
		return engine.Draft{}, repositories.ErrDraftNotFound
	}
	return draft, nil
}

func (f *fakeDraftStore) DeleteDraft(_ context.Context, userID string) error {
	delete(f.drafts, userID)
	return nil
}

func TestDraftService_SaveAndGet(t *testing.T) {
	store := newFakeDraftStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewDraftService(store).WithClock(func() time.Time { return now })
	userID := uuid.NewString()

	saved, err := svc.SaveDraft(userID, engine.Snapshot{Area: 120})
	require.NoError(t, err)
	require.Equal(t, now, saved.SavedAt)

	got, err := svc.GetDraft(userID)
	require.NoError(t, err)
	require.Equal(t, 120.0, got.Snapshot.Area)
}

func TestDraftService_GetMissing(t *testing.T) {
	svc := NewDraftService(newFakeDraftStore())

	_, err := svc.GetDraft(uuid.NewString())
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftService_StaleDraftDiscarded(t *testing.T) {
	store := newFakeDraftStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewDraftService(store).WithClock(func() time.Time { return now })
	userID := uuid.NewString()

	_, err := svc.SaveDraft(userID, engine.Snapshot{Area: 120})
	require.NoError(t, err)

	// One second inside the window it is still served.
	now = now.Add(engine.DraftTTL - time.Second)
	got, err := svc.GetDraft(userID)
	require.NoError(t, err)
	require.Equal(t, 120.0, got.Snapshot.Area)

	// Past the window it is gone, and removed from the store.
	now = now.Add(2 * time.Second)
	_, err = svc.GetDraft(userID)
	require.ErrorIs(t, err, ErrDraftNotFound)
	require.Empty(t, store.drafts)
}

func TestDraftService_Delete(t *testing.T) {
	store := newFakeDraftStore()
	svc := NewDraftService(store)
	userID := uuid.NewString()

	_, err := svc.SaveDraft(userID, engine.Snapshot{Area: 50})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDraft(userID))
	_, err = svc.GetDraft(userID)
	require.ErrorIs(t, err, ErrDraftNotFound)
}
