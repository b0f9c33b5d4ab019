// Package service holds the account and message business rules. Services take
// their stores as explicit dependencies and hold no state of their own.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/events"
	"github.com/socialhub/api/internal/models"
	"github.com/socialhub/api/internal/utils"
)

// AccountService validates and orchestrates registration and login.
type AccountService struct {
	accounts  AccountStore
	passwords utils.PasswordScheme
	publisher EventPublisher
	log       *slog.Logger
}

// NewAccountService wires an AccountService. passwords defaults to plain text
// and publisher may be nil.
func NewAccountService(
	accounts AccountStore,
	passwords utils.PasswordScheme,
	publisher EventPublisher,
	log *slog.Logger,
) *AccountService {
	if passwords == nil {
		passwords = utils.PlainTextPasswords{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &AccountService{
		accounts:  accounts,
		passwords: passwords,
		publisher: publisher,
		log:       log,
	}
}

// RegisterUser persists a new account and returns it with its store-assigned id.
func (s *AccountService) RegisterUser(ctx context.Context, username, password string) (*models.Account, error) {
	if err := validateCredentials(username, password); err != nil {
		s.log.Debug("Rejected registration", "username", username, "error", err)
		return nil, err
	}

	_, exists, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: username %s already exists", apperrors.ErrUsernameConflict, username)
	}

	stored, err := s.passwords.Encode(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes long", apperrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	account, err := s.accounts.Insert(ctx, models.Account{Username: username, Password: stored})
	if err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	publish(ctx, s.publisher, s.log, events.AccountEventsStream, events.AccountRegistered, events.AccountRegisteredEvent{
		AccountID: account.ID,
		Username:  account.Username,
	})
	s.log.Info("Account registered", "accountId", account.ID)
	return &account, nil
}

// Login returns the stored account when username and password match.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.Account, error) {
	account, exists, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: username incorrect", apperrors.ErrAuthFailure)
	}
	if !s.passwords.Matches(password, account.Password) {
		return nil, fmt.Errorf("%w: password incorrect", apperrors.ErrAuthFailure)
	}
	return &account, nil
}

func publish(ctx context.Context, p EventPublisher, log *slog.Logger, stream, eventType string, data any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, stream, eventType, data); err != nil {
		log.Warn("Failed to publish event", "type", eventType, "error", err)
	}
}
