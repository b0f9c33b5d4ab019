package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/models"
)

// AccountStore persists accounts in the account table.
type AccountStore struct {
	db *sql.DB
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	return s.findOne(ctx, `SELECT account_id, username, password FROM account WHERE username = ?`, username)
}

func (s *AccountStore) FindByID(ctx context.Context, id int) (models.Account, bool, error) {
	return s.findOne(ctx, `SELECT account_id, username, password FROM account WHERE account_id = ?`, id)
}

func (s *AccountStore) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO account (username, password) VALUES (?, ?)`,
		account.Username, account.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, fmt.Errorf("%w: username %s already exists", apperrors.ErrUsernameConflict, account.Username)
		}
		return models.Account{}, fmt.Errorf("inserting account: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Account{}, fmt.Errorf("reading account id: %w", err)
	}
	account.ID = int(id)
	return account, nil
}

func (s *AccountStore) findOne(ctx context.Context, query string, arg any) (models.Account, bool, error) {
	var account models.Account
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&account.ID, &account.Username, &account.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("querying account: %w", err)
	}
	return account, true, nil
}
