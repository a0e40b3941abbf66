package usecase

import (
	"context"
	"strings"
	"time"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
	notifier    Notifier
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	listingRepo repository.ListingRepository,
	profileRepo repository.ProfileRepository,
	notifier Notifier,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

type SendMessageInput struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	ListingID  string `json:"listing_id" validate:"required"`
	Subject    string `json:"subject"`
	Content    string `json:"content" validate:"required,max=2000"`
}

// Send stores a message about a listing and pushes a live notification to
// the receiver if connected.
func (uc *MessageUseCase) Send(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.BadRequest("Message content is required", nil)
	}
	if senderID == input.ReceiverID {
		return nil, errors.BadRequest("You cannot message yourself", nil)
	}

	if _, err := uc.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, err
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("Receiver", err)
		}
		return nil, err
	}

	message := &entity.Message{
		ID:         newID(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		ListingID:  input.ListingID,
		Subject:    input.Subject,
		Content:    strings.TrimSpace(input.Content),
		CreatedAt:  time.Now(),
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.notifier.NotifyUser(input.ReceiverID, "message.new", message)
	return message, nil
}

// ListForUser returns every message the user sent or received, newest
// first.
func (uc *MessageUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	return uc.messageRepo.ListForUser(ctx, userID)
}

// MarkRead marks a message read. Only the receiver may do this.
func (uc *MessageUseCase) MarkRead(ctx context.Context, userID, messageID string) error {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.ReceiverID != userID {
		return errors.Forbidden("Only the receiver can mark a message read", nil)
	}

	return uc.messageRepo.MarkRead(ctx, messageID)
}
