package database

import (
	"context"
	"fmt"
)

// schema creates the four record families. Statements are idempotent so
// Migrate can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		user_id             BIGINT PRIMARY KEY,
		name                TEXT NOT NULL,
		expected_start_time TEXT NOT NULL DEFAULT '10:00',
		registered_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS conversation_states (
		user_id    BIGINT PRIMARY KEY,
		state      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS pending_actions (
		user_id     BIGINT PRIMARY KEY,
		action      TEXT NOT NULL,
		declared_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id         UUID PRIMARY KEY,
		user_id    BIGINT NOT NULL,
		username   TEXT NOT NULL,
		date       DATE NOT NULL,
		time_in    TIMESTAMPTZ NOT NULL,
		time_out   TIMESTAMPTZ,
		lat_in     DOUBLE PRECISION NOT NULL,
		lon_in     DOUBLE PRECISION NOT NULL,
		lat_out    DOUBLE PRECISION,
		lon_out    DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS attendances_one_open_per_day
		ON attendances (user_id, date) WHERE time_out IS NULL`,
	`CREATE TABLE IF NOT EXISTS tardiness (
		id            UUID PRIMARY KEY,
		user_id       BIGINT NOT NULL,
		attendance_id UUID NOT NULL REFERENCES attendances (id),
		date          DATE NOT NULL,
		time_in       TIMESTAMPTZ NOT NULL,
		delay_minutes INTEGER NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS tardiness_date_idx ON tardiness (date)`,
}

// Migrate applies the schema inside a single transaction.
func (db *DB) Migrate(ctx context.Context) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}
