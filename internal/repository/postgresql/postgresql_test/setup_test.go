package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDatabase connects to TEST_DATABASE_URL and applies the schema.
// Tests are skipped when no database is configured.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))
	truncateAllTables(t, db)

	return db
}

// truncateAllTables removes every row so each test starts empty
func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		TRUNCATE TABLE tardiness, attendances, pending_actions, conversation_states, employees CASCADE
	`)
	require.NoError(t, err)
}
