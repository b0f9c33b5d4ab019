// Package postgres implements the account and message stores on PostgreSQL
// through database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS account (
		account_id SERIAL PRIMARY KEY,
		username   VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS message (
		message_id        SERIAL PRIMARY KEY,
		posted_by         INTEGER NOT NULL,
		message_text      VARCHAR(255) NOT NULL,
		time_posted_epoch BIGINT
	);

	CREATE INDEX IF NOT EXISTS message_posted_by_idx ON message (posted_by);
`

// Migrate creates the account and message tables if they do not exist.
// message.posted_by references account.account_id logically only; there is no
// foreign key constraint.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
