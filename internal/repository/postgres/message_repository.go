package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/socialhub/api/internal/models"
)

// MessageRepository persists messages in the message table.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Insert(ctx context.Context, message models.Message) (models.Message, error) {
	query := `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`
	err := r.db.QueryRowContext(ctx, query,
		message.PostedBy, message.MessageText, nullInt64(message.TimePosted),
	).Scan(&message.ID)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id int) (models.Message, bool, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE message_id = $1
	`
	var message models.Message
	var timePosted sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&message.ID, &message.PostedBy, &message.MessageText, &timePosted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, false, nil
	}
	if err != nil {
		return models.Message{}, false, fmt.Errorf("failed to get message: %w", err)
	}
	message.TimePosted = fromNullInt64(timePosted)
	return message, true, nil
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		ORDER BY message_id
	`
	return r.list(ctx, query)
}

func (r *MessageRepository) FindByPostedBy(ctx context.Context, accountID int) ([]models.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE posted_by = $1
		ORDER BY message_id
	`
	return r.list(ctx, query, accountID)
}

func (r *MessageRepository) DeleteByID(ctx context.Context, id int) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM message WHERE message_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete message: %w", err)
	}
	return rowsAffected(result)
}

func (r *MessageRepository) UpdateText(ctx context.Context, id int, text string) (int, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE message SET message_text = $2 WHERE message_id = $1`, id, text)
	if err != nil {
		return 0, fmt.Errorf("failed to update message: %w", err)
	}
	return rowsAffected(result)
}

func (r *MessageRepository) list(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var message models.Message
		var timePosted sql.NullInt64
		if err := rows.Scan(&message.ID, &message.PostedBy, &message.MessageText, &timePosted); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		message.TimePosted = fromNullInt64(timePosted)
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}

func rowsAffected(result sql.Result) (int, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return int(rows), nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
