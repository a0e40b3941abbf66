package repository

import (
	"context"

	"nexar/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	// ListForUser returns messages where the user is sender or receiver,
	// newest first.
	ListForUser(ctx context.Context, userID string) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id string) error
}
