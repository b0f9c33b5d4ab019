package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/socialhub/api/internal/models"
)

const selectMessage = `SELECT message_id, posted_by, message_text, time_posted_epoch FROM message`

// MessageStore persists messages in the message table.
type MessageStore struct {
	db *sql.DB
}

func (s *MessageStore) Insert(ctx context.Context, message models.Message) (models.Message, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?)`,
		message.PostedBy, message.MessageText, nullInt64(message.TimePosted),
	)
	if err != nil {
		return models.Message{}, fmt.Errorf("inserting message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Message{}, fmt.Errorf("reading message id: %w", err)
	}
	message.ID = int(id)
	return message, nil
}

func (s *MessageStore) FindByID(ctx context.Context, id int) (models.Message, bool, error) {
	row := s.db.QueryRowContext(ctx, selectMessage+` WHERE message_id = ?`, id)
	message, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, false, nil
	}
	if err != nil {
		return models.Message{}, false, fmt.Errorf("querying message: %w", err)
	}
	return message, true, nil
}

func (s *MessageStore) FindAll(ctx context.Context) ([]models.Message, error) {
	return s.list(ctx, selectMessage+` ORDER BY message_id`)
}

func (s *MessageStore) FindByPostedBy(ctx context.Context, accountID int) ([]models.Message, error) {
	return s.list(ctx, selectMessage+` WHERE posted_by = ? ORDER BY message_id`, accountID)
}

func (s *MessageStore) DeleteByID(ctx context.Context, id int) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM message WHERE message_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting message: %w", err)
	}
	return rowsAffected(result)
}

func (s *MessageStore) UpdateText(ctx context.Context, id int, text string) (int, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE message SET message_text = ? WHERE message_id = ?`, text, id)
	if err != nil {
		return 0, fmt.Errorf("updating message: %w", err)
	}
	return rowsAffected(result)
}

func (s *MessageStore) list(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (models.Message, error) {
	var message models.Message
	var timePosted sql.NullInt64
	if err := row.Scan(&message.ID, &message.PostedBy, &message.MessageText, &timePosted); err != nil {
		return models.Message{}, err
	}
	if timePosted.Valid {
		v := timePosted.Int64
		message.TimePosted = &v
	}
	return message, nil
}

func rowsAffected(result sql.Result) (int, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return int(rows), nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
