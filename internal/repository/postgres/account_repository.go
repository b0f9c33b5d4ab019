package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/models"
)

// AccountRepository persists accounts in the account table.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	query := `SELECT account_id, username, password FROM account WHERE username = $1`
	return r.findOne(ctx, query, username)
}

func (r *AccountRepository) FindByID(ctx context.Context, id int) (models.Account, bool, error) {
	query := `SELECT account_id, username, password FROM account WHERE account_id = $1`
	return r.findOne(ctx, query, id)
}

// Insert stores the account and returns it with the id assigned by the
// database. A duplicate username maps to apperrors.ErrUsernameConflict.
func (r *AccountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	query := `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`
	err := r.db.QueryRowContext(ctx, query, account.Username, account.Password).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, fmt.Errorf("%w: username %s already exists", apperrors.ErrUsernameConflict, account.Username)
		}
		return models.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg any) (models.Account, bool, error) {
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&account.ID, &account.Username, &account.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("failed to get account: %w", err)
	}
	return account, true, nil
}
