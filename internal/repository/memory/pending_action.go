package memory

import (
	"context"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/action"
)

type pendingActionRepository struct {
	store *Store
}

func NewPendingActionRepository(s *Store) action.PendingActionRepository {
	return &pendingActionRepository{store: s}
}

func (r *pendingActionRepository) Declare(ctx context.Context, userID int64, a action.Action) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	keep(ctx, r.store.pending, userID)
	r.store.pending[userID] = a
	return nil
}

func (r *pendingActionRepository) Consume(ctx context.Context, userID int64) (action.Action, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.pending[userID]
	if ok {
		keep(ctx, r.store.pending, userID)
		delete(r.store.pending, userID)
	}
	return a, ok, nil
}
