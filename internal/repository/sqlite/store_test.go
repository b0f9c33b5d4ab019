package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/models"
)

// setupTestStore creates a file-backed SQLite store in a temp directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "social.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "social.db")

	first, err := NewStore(ctx, path)
	require.NoError(t, err)
	_, err = first.AccountStore().Insert(ctx, models.Account{Username: "alice", Password: "pw12"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	var version int
	require.NoError(t, second.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	_, ok, err := second.AccountStore().FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewStore_InMemory(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	account, err := store.AccountStore().Insert(ctx, models.Account{Username: "alice", Password: "pw12"})
	require.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.Equal(t, MemoryPath, store.Path())
}

func TestAccountStore(t *testing.T) {
	ctx := context.Background()
	accounts := setupTestStore(t).AccountStore()

	alice, err := accounts.Insert(ctx, models.Account{Username: "alice", Password: "pw12"})
	require.NoError(t, err)
	assert.Positive(t, alice.ID)

	_, err = accounts.Insert(ctx, models.Account{Username: "alice", Password: "other"})
	require.ErrorIs(t, err, apperrors.ErrUsernameConflict)

	found, ok, err := accounts.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, found)

	found, ok, err = accounts.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, found)

	_, ok, err = accounts.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = accounts.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessageStore(t *testing.T) {
	ctx := context.Background()
	messages := setupTestStore(t).MessageStore()

	all, err := messages.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	posted := int64(1669947792)
	first, err := messages.Insert(ctx, models.Message{PostedBy: 1, MessageText: "first", TimePosted: &posted})
	require.NoError(t, err)
	second, err := messages.Insert(ctx, models.Message{PostedBy: 2, MessageText: "second"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	got, ok, err := messages.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.TimePosted)
	assert.Equal(t, posted, *got.TimePosted)

	got, ok, err = messages.FindByID(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.TimePosted)

	all, err = messages.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{first, second}, all)

	mine, err := messages.FindByPostedBy(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{first}, mine)

	none, err := messages.FindByPostedBy(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	rows, err := messages.UpdateText(ctx, second.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	got, _, err = messages.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.MessageText)

	rows, err = messages.UpdateText(ctx, 999, "edited")
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	rows, err = messages.DeleteByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	rows, err = messages.DeleteByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	_, ok, err = messages.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
