package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/socialhub/api/internal/models"
)

// MessageStore is an in-memory message store. Listings are ordered by id.
type MessageStore struct {
	mu       sync.RWMutex
	nextID   int
	messages map[int]models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		nextID:   1,
		messages: make(map[int]models.Message),
	}
}

func (s *MessageStore) Insert(_ context.Context, message models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.ID = s.nextID
	s.nextID++
	s.messages[message.ID] = message
	return message, nil
}

func (s *MessageStore) FindByID(_ context.Context, id int) (models.Message, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	message, ok := s.messages[id]
	return message, ok, nil
}

func (s *MessageStore) FindAll(_ context.Context) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(lo.Values(s.messages)), nil
}

func (s *MessageStore) FindByPostedBy(_ context.Context, accountID int) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := lo.Filter(lo.Values(s.messages), func(m models.Message, _ int) bool {
		return m.PostedBy == accountID
	})
	return s.sorted(owned), nil
}

func (s *MessageStore) DeleteByID(_ context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return 0, nil
	}
	delete(s.messages, id)
	return 1, nil
}

func (s *MessageStore) UpdateText(_ context.Context, id int, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok {
		return 0, nil
	}
	message.MessageText = text
	s.messages[id] = message
	return 1, nil
}

func (s *MessageStore) sorted(messages []models.Message) []models.Message {
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages
}
