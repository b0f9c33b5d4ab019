package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/events"
	"github.com/socialhub/api/internal/models"
)

// MessageService validates and orchestrates message CRUD. It consults the
// AccountStore only to check that the author of a new message exists.
type MessageService struct {
	messages  MessageStore
	accounts  AccountStore
	publisher EventPublisher
	log       *slog.Logger
}

func NewMessageService(
	messages MessageStore,
	accounts AccountStore,
	publisher EventPublisher,
	log *slog.Logger,
) *MessageService {
	if log == nil {
		log = slog.Default()
	}
	return &MessageService{
		messages:  messages,
		accounts:  accounts,
		publisher: publisher,
		log:       log,
	}
}

// CreateMessage persists msg and returns it with its store-assigned id. The
// author check and the insert are separate store calls.
func (s *MessageService) CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error) {
	if err := validateMessageText(msg.MessageText); err != nil {
		return nil, err
	}

	_, exists, err := s.accounts.FindByID(ctx, msg.PostedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: message must be posted by an existing user", apperrors.ErrInvalidMessage)
	}

	msg.ID = 0
	created, err := s.messages.Insert(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	publish(ctx, s.publisher, s.log, events.MessageEventsStream, events.MessageCreated, events.MessageCreatedEvent{
		MessageID: created.ID,
		PostedBy:  created.PostedBy,
	})
	return &created, nil
}

// GetAllMessages returns every stored message in the store's natural order.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// GetMessageByID reports found=false, not an error, when no message has id.
func (s *MessageService) GetMessageByID(ctx context.Context, id int) (models.Message, bool, error) {
	message, found, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return models.Message{}, false, fmt.Errorf("failed to get message: %w", err)
	}
	return message, found, nil
}

// DeleteMessageByID returns 1 when a message was removed and 0 when none existed.
func (s *MessageService) DeleteMessageByID(ctx context.Context, id int) (int, error) {
	rows, err := s.messages.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete message: %w", err)
	}
	if rows > 0 {
		publish(ctx, s.publisher, s.log, events.MessageEventsStream, events.MessageDeleted, events.MessageDeletedEvent{
			MessageID: id,
		})
	}
	return rows, nil
}

// PatchMessageByID replaces the text of an existing message and returns 1.
// Unlike delete, a missing id is an error here.
func (s *MessageService) PatchMessageByID(ctx context.Context, id int, text string) (int, error) {
	_, found, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to get message: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: message %d does not exist", apperrors.ErrInvalidMessage, id)
	}
	if err := validateMessageText(text); err != nil {
		return 0, err
	}

	rows, err := s.messages.UpdateText(ctx, id, text)
	if err != nil {
		return 0, fmt.Errorf("failed to update message: %w", err)
	}
	if rows == 0 {
		// deleted between the lookup and the update
		return 0, fmt.Errorf("%w: message %d does not exist", apperrors.ErrInvalidMessage, id)
	}

	publish(ctx, s.publisher, s.log, events.MessageEventsStream, events.MessageUpdated, events.MessageUpdatedEvent{
		MessageID: id,
	})
	return 1, nil
}

// GetMessagesByAccountID returns the messages posted by accountID. The account
// itself is not required to exist.
func (s *MessageService) GetMessagesByAccountID(ctx context.Context, accountID int) ([]models.Message, error) {
	messages, err := s.messages.FindByPostedBy(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for account %d: %w", accountID, err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}
