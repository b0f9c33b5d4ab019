package cache

import (
	"context"
	"strconv"

	"github.com/socialhub/api/internal/models"
	"github.com/socialhub/api/internal/service"
)

const messageKeyPrefix = "message:view:"

// MessageCache is the slice of ViewCache used by CachedMessageStore.
type MessageCache interface {
	Get(ctx context.Context, key string) (*models.Message, bool)
	Set(ctx context.Context, key string, value *models.Message)
	Delete(ctx context.Context, key string)
}

// CachedMessageStore serves FindByID from Redis, falling back to the wrapped
// store and warming the cache on a miss. Mutations go to the wrapped store
// first and then invalidate the cached entry. Absent messages are not cached.
type CachedMessageStore struct {
	service.MessageStore
	cache MessageCache
}

func NewCachedMessageStore(inner service.MessageStore, cache MessageCache) *CachedMessageStore {
	return &CachedMessageStore{MessageStore: inner, cache: cache}
}

func (s *CachedMessageStore) FindByID(ctx context.Context, id int) (models.Message, bool, error) {
	key := messageKey(id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return *cached, true, nil
	}

	message, found, err := s.MessageStore.FindByID(ctx, id)
	if err != nil || !found {
		return message, found, err
	}
	s.cache.Set(ctx, key, &message)
	return message, true, nil
}

func (s *CachedMessageStore) DeleteByID(ctx context.Context, id int) (int, error) {
	rows, err := s.MessageStore.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	s.cache.Delete(ctx, messageKey(id))
	return rows, nil
}

func (s *CachedMessageStore) UpdateText(ctx context.Context, id int, text string) (int, error) {
	rows, err := s.MessageStore.UpdateText(ctx, id, text)
	if err != nil {
		return 0, err
	}
	s.cache.Delete(ctx, messageKey(id))
	return rows, nil
}

func messageKey(id int) string {
	return messageKeyPrefix + strconv.Itoa(id)
}
