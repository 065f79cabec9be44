package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type conversationRepositoryImpl struct {
	db *database.DB
}

func NewConversationRepository(db *database.DB) employee.ConversationRepository {
	return &conversationRepositoryImpl{db: db}
}

// GetState implements employee.ConversationRepository.
func (c *conversationRepositoryImpl) GetState(ctx context.Context, userID int64) (employee.ConversationState, error) {
	q := GetQuerier(ctx, c.db)

	var state string
	err := q.QueryRow(ctx, `SELECT state FROM conversation_states WHERE user_id = $1`, userID).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get conversation state for %d: %w", userID, err)
	}

	return employee.ConversationState(state), nil
}

// SetState implements employee.ConversationRepository.
func (c *conversationRepositoryImpl) SetState(ctx context.Context, userID int64, state employee.ConversationState) error {
	q := GetQuerier(ctx, c.db)

	_, err := q.Exec(ctx, `
		INSERT INTO conversation_states (user_id, state)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = NOW()
	`, userID, string(state))
	if err != nil {
		return fmt.Errorf("failed to set conversation state for %d: %w", userID, err)
	}

	return nil
}
