package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/socialhub/api/internal/models"
	"github.com/socialhub/api/internal/repository/memory"
)

type fakeCache struct {
	entries map[string]models.Message
	gets    int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]models.Message{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (*models.Message, bool) {
	f.gets++
	m, ok := f.entries[key]
	if !ok {
		return nil, false
	}
	f.hits++
	return &m, true
}

func (f *fakeCache) Set(_ context.Context, key string, value *models.Message) {
	f.entries[key] = *value
}

func (f *fakeCache) Delete(_ context.Context, key string) {
	delete(f.entries, key)
}

func TestCachedMessageStore_FindByIDWarmsCache(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	inner := memory.NewMessageStore()
	cache := newFakeCache()
	store := NewCachedMessageStore(inner, cache)

	created, err := store.Insert(ctx, models.Message{PostedBy: 1, MessageText: "hello"})
	req.NoError(err)

	got, found, err := store.FindByID(ctx, created.ID)
	req.NoError(err)
	req.True(found)
	req.Equal(created, got)
	req.Equal(0, cache.hits)
	req.Contains(cache.entries, messageKey(created.ID))

	got, found, err = store.FindByID(ctx, created.ID)
	req.NoError(err)
	req.True(found)
	req.Equal(created, got)
	req.Equal(1, cache.hits)
}

func TestCachedMessageStore_MissingIsNotCached(t *testing.T) {
	req := require.New(t)
	cache := newFakeCache()
	store := NewCachedMessageStore(memory.NewMessageStore(), cache)

	_, found, err := store.FindByID(context.Background(), 42)
	req.NoError(err)
	req.False(found)
	req.Empty(cache.entries)
}

func TestCachedMessageStore_MutationsInvalidate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	cache := newFakeCache()
	store := NewCachedMessageStore(memory.NewMessageStore(), cache)

	created, err := store.Insert(ctx, models.Message{PostedBy: 1, MessageText: "hello"})
	req.NoError(err)
	_, _, err = store.FindByID(ctx, created.ID)
	req.NoError(err)

	rows, err := store.UpdateText(ctx, created.ID, "edited")
	req.NoError(err)
	req.Equal(1, rows)
	req.NotContains(cache.entries, messageKey(created.ID))

	got, found, err := store.FindByID(ctx, created.ID)
	req.NoError(err)
	req.True(found)
	req.Equal("edited", got.MessageText)

	rows, err = store.DeleteByID(ctx, created.ID)
	req.NoError(err)
	req.Equal(1, rows)
	req.NotContains(cache.entries, messageKey(created.ID))

	_, found, err = store.FindByID(ctx, created.ID)
	req.NoError(err)
	req.False(found)
}

type failingStore struct {
	*memory.MessageStore
}

func (failingStore) DeleteByID(context.Context, int) (int, error) {
	return 0, errors.New("db down")
}

func TestCachedMessageStore_DeleteErrorKeepsCache(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	cache := newFakeCache()
	cache.entries[messageKey(1)] = models.Message{ID: 1, PostedBy: 1, MessageText: "hello"}
	store := NewCachedMessageStore(failingStore{memory.NewMessageStore()}, cache)

	_, err := store.DeleteByID(ctx, 1)
	req.Error(err)
	req.Contains(cache.entries, messageKey(1))
}
