package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{client: client}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		doc := r.client.Collection("messages").NewDoc()
		message.ID = doc.ID
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to send message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	doc, err := r.client.Collection("messages").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}

	return &message, nil
}

// ListForUser merges the sent and received sets, newest first. Two queries
// because the store cannot OR across fields in one.
func (r *firestoreMessageRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	seen := make(map[string]bool)

	for _, field := range []string{"senderId", "receiverId"} {
		docs, err := r.client.Collection("messages").Where(field, "==", userID).Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to get messages", err)
		}
		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				continue
			}
			if seen[message.ID] {
				continue
			}
			seen[message.ID] = true
			messages = append(messages, &message)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("messages").Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to mark message as read", err)
	}

	return nil
}
