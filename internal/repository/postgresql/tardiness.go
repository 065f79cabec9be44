package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/google/uuid"
)

type tardinessRepositoryImpl struct {
	db *database.DB
}

func NewTardinessRepository(db *database.DB) tardiness.TardinessRepository {
	return &tardinessRepositoryImpl{db: db}
}

// Create implements tardiness.TardinessRepository.
func (t *tardinessRepositoryImpl) Create(ctx context.Context, event tardiness.TardinessEvent) (tardiness.TardinessEvent, error) {
	q := GetQuerier(ctx, t.db)

	if event.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return tardiness.TardinessEvent{}, fmt.Errorf("failed to generate tardiness id: %w", err)
		}
		event.ID = id.String()
	}

	query := `
		INSERT INTO tardiness (id, user_id, attendance_id, date, time_in, delay_minutes)
		VALUES ($1, $2, $3, $4::date, $5, $6)
		RETURNING id, user_id, attendance_id, date, time_in, delay_minutes, created_at
	`

	var created tardiness.TardinessEvent
	err := q.QueryRow(ctx, query,
		event.ID, event.UserID, event.AttendanceID, event.Date.Format(dateLayout), event.TimeIn, event.DelayMinutes,
	).Scan(
		&created.ID, &created.UserID, &created.AttendanceID, &created.Date,
		&created.TimeIn, &created.DelayMinutes, &created.CreatedAt,
	)
	if err != nil {
		return tardiness.TardinessEvent{}, fmt.Errorf("failed to create tardiness event: %w", err)
	}

	return created, nil
}

// ListBetween implements tardiness.TardinessRepository.
func (t *tardinessRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]tardiness.TardinessEvent, error) {
	q := GetQuerier(ctx, t.db)

	rows, err := q.Query(ctx, `
		SELECT id, user_id, attendance_id, date, time_in, delay_minutes, created_at
		FROM tardiness
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date, time_in
	`, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list tardiness events: %w", err)
	}
	defer rows.Close()

	var events []tardiness.TardinessEvent
	for rows.Next() {
		var e tardiness.TardinessEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.AttendanceID, &e.Date, &e.TimeIn, &e.DelayMinutes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tardiness event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tardiness events: %w", err)
	}

	return events, nil
}
