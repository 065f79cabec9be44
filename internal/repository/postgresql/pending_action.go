package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/action"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type pendingActionRepositoryImpl struct {
	db *database.DB
}

func NewPendingActionRepository(db *database.DB) action.PendingActionRepository {
	return &pendingActionRepositoryImpl{db: db}
}

// Declare implements action.PendingActionRepository.
func (p *pendingActionRepositoryImpl) Declare(ctx context.Context, userID int64, a action.Action) error {
	q := GetQuerier(ctx, p.db)

	_, err := q.Exec(ctx, `
		INSERT INTO pending_actions (user_id, action)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET action = EXCLUDED.action, declared_at = NOW()
	`, userID, string(a))
	if err != nil {
		return fmt.Errorf("failed to declare action for %d: %w", userID, err)
	}

	return nil
}

// Consume implements action.PendingActionRepository.
func (p *pendingActionRepositoryImpl) Consume(ctx context.Context, userID int64) (action.Action, bool, error) {
	q := GetQuerier(ctx, p.db)

	var a string
	err := q.QueryRow(ctx, `
		DELETE FROM pending_actions
		WHERE user_id = $1
		RETURNING action
	`, userID).Scan(&a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to consume action for %d: %w", userID, err)
	}

	return action.Action(a), true, nil
}
