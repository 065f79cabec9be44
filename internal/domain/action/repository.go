package action

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// PendingActionRepository is a single-slot register per user.
type PendingActionRepository interface {
	// Declare stores the action, replacing any unconsumed one
	Declare(ctx context.Context, userID int64, a Action) error

	// Consume reads and clears the pending action in one step.
	// ok is false when nothing was pending.
	Consume(ctx context.Context, userID int64) (a Action, ok bool, err error)
}
