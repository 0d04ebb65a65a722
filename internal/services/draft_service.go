package services

import (
	"context"
	"errors"
	"time"

	"archbudget/internal/engine"
	"archbudget/internal/repositories"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore holds in-progress calculator state (redis-backed).
type DraftStore interface {
	StoreDraft(ctx context.Context, userID string, draft engine.Draft) error
	GetDraft(ctx context.Context, userID string) (engine.Draft, error)
	DeleteDraft(ctx context.Context, userID string) error
}

// DraftService persists and restores the session draft. The clock is
// injected so freshness is testable without wall-clock reads.
type DraftService struct {
	drafts DraftStore
	now    func() time.Time
}

func NewDraftService(drafts DraftStore) *DraftService {
	return &DraftService{
		drafts: drafts,
		now:    time.Now,
	}
}

// WithClock overrides the clock. Tests only.
func (s *DraftService) WithClock(now func() time.Time) *DraftService {
	s.now = now
	return s
}

func (s *DraftService) SaveDraft(userID string, snapshot engine.Snapshot) (engine.Draft, error) {
	draft := engine.Draft{
		Snapshot: snapshot,
		SavedAt:  s.now(),
	}
	if err := s.drafts.StoreDraft(context.Background(), userID, draft); err != nil {
		return engine.Draft{}, err
	}
	return draft, nil
}

// GetDraft returns the user's draft if it is still fresh; a stale draft is
// discarded and reported as not found, same as an absent one.
func (s *DraftService) GetDraft(userID string) (engine.Draft, error) {
	ctx := context.Background()

	draft, err := s.drafts.GetDraft(ctx, userID)
	if errors.Is(err, repositories.ErrDraftNotFound) {
		return engine.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return engine.Draft{}, err
	}

	if !draft.Fresh(s.now()) {
		_ = s.drafts.DeleteDraft(ctx, userID)
		return engine.Draft{}, ErrDraftNotFound
	}

	return draft, nil
}

func (s *DraftService) DeleteDraft(userID string) error {
	return s.drafts.DeleteDraft(context.Background(), userID)
}
