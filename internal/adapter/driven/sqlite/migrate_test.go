package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	// setupTestDB already migrated once; a second run must no-op.
	db := setupTestDB(t)
	require.NoError(t, RunMigrations(db.Writer))

	var version int
	err := db.Reader.QueryRowContext(context.Background(), `SELECT version FROM schema_migrations`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}
