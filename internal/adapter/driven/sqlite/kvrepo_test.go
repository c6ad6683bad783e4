package sqlite

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

func TestKVRepo_SetAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db, nil)
	ctx := context.Background()

	err := repo.Set(ctx, driven.KeyAuthToken, "abc123")
	require.NoError(t, err)

	val, err := repo.Get(ctx, driven.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", val)
}

func TestKVRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db, nil)
	ctx := context.Background()

	val, err := repo.Get(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestKVRepo_UpsertOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db, nil)
	ctx := context.Background()

	err := repo.Set(ctx, driven.KeyUserData, "old-value")
	require.NoError(t, err)

	err = repo.Set(ctx, driven.KeyUserData, "new-value")
	require.NoError(t, err)

	val, err := repo.Get(ctx, driven.KeyUserData)
	require.NoError(t, err)
	assert.Equal(t, "new-value", val)
}

func TestKVRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db, nil)
	ctx := context.Background()

	err := repo.Set(ctx, driven.KeyAuthToken, "abc123")
	require.NoError(t, err)

	err = repo.Delete(ctx, driven.KeyAuthToken)
	require.NoError(t, err)

	val, err := repo.Get(ctx, driven.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestKVRepo_DeleteNonexistent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db, nil)
	ctx := context.Background()

	err := repo.Delete(ctx, "nonexistent")
	assert.NoError(t, err, "deleting a nonexistent key should not error")
}

func TestKVRepo_EncryptedRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	key := bytes.Repeat([]byte{0x42}, 32)
	repo := NewKVRepo(db, key)
	ctx := context.Background()

	err := repo.Set(ctx, driven.KeyAuthToken, "super-secret-token")
	require.NoError(t, err)

	val, err := repo.Get(ctx, driven.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "super-secret-token", val)
}

func TestKVRepo_EncryptedValueNotStoredInPlaintext(t *testing.T) {
	db := setupTestDB(t)
	key := bytes.Repeat([]byte{0x42}, 32)
	repo := NewKVRepo(db, key)
	ctx := context.Background()

	err := repo.Set(ctx, driven.KeyAuthToken, "super-secret-token")
	require.NoError(t, err)

	var stored string
	err = db.Reader.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, driven.KeyAuthToken).Scan(&stored)
	require.NoError(t, err)
	assert.NotEqual(t, "super-secret-token", stored)
	assert.NotContains(t, stored, "super-secret-token")
}

func TestKVRepo_WrongKeyFailsToDecrypt(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	writer := NewKVRepo(db, bytes.Repeat([]byte{0x42}, 32))
	err := writer.Set(ctx, driven.KeyAuthToken, "super-secret-token")
	require.NoError(t, err)

	reader := NewKVRepo(db, bytes.Repeat([]byte{0x43}, 32))
	_, err = reader.Get(ctx, driven.KeyAuthToken)
	assert.Error(t, err)
}
