//go:generate go run go.uber.org/mock/mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks
package service

import (
	"context"

	"github.com/socialhub/api/internal/models"
)

// AccountStore persists Account records. Insert assigns the id.
type AccountStore interface {
	FindByUsername(ctx context.Context, username string) (models.Account, bool, error)
	FindByID(ctx context.Context, id int) (models.Account, bool, error)
	Insert(ctx context.Context, account models.Account) (models.Account, error)
}

// MessageStore persists Message records. DeleteByID and UpdateText report the
// number of rows affected.
type MessageStore interface {
	Insert(ctx context.Context, message models.Message) (models.Message, error)
	FindByID(ctx context.Context, id int) (models.Message, bool, error)
	FindAll(ctx context.Context) ([]models.Message, error)
	FindByPostedBy(ctx context.Context, accountID int) ([]models.Message, error)
	DeleteByID(ctx context.Context, id int) (int, error)
	UpdateText(ctx context.Context, id int, text string) (int, error)
}

// EventPublisher emits domain events after successful mutations.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}
