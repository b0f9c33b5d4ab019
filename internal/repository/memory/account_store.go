// Package memory provides map-backed stores for tests and local runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/models"
)

// AccountStore is an in-memory account store with a unique username index.
type AccountStore struct {
	mu         sync.RWMutex
	nextID     int
	byID       map[int]models.Account
	byUsername map[string]int
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		nextID:     1,
		byID:       make(map[int]models.Account),
		byUsername: make(map[string]int),
	}
}

func (s *AccountStore) FindByUsername(_ context.Context, username string) (models.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return models.Account{}, false, nil
	}
	return s.byID[id], true, nil
}

func (s *AccountStore) FindByID(_ context.Context, id int) (models.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byID[id]
	return account, ok, nil
}

// Insert assigns the next id. A taken username fails like a unique constraint.
func (s *AccountStore) Insert(_ context.Context, account models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[account.Username]; taken {
		return models.Account{}, fmt.Errorf("%w: username %s already exists", apperrors.ErrUsernameConflict, account.Username)
	}
	account.ID = s.nextID
	s.nextID++
	s.byID[account.ID] = account
	s.byUsername[account.Username] = account.ID
	return account, nil
}
