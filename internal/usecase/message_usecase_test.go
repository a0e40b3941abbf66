package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexar/internal/domain/entity"
)

func messageFixture(t *testing.T) (*MessageUseCase, *fakeNotifier) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{
		ID:     "listing-1",
		Status: "active",
	}))

	profileRepo := newFakeProfileRepo()
	seedProfile(t, profileRepo, "seller")

	notifier := &fakeNotifier{}
	uc := NewMessageUseCase(newFakeMessageRepo(), listingRepo, profileRepo, notifier)
	return uc, notifier
}

func TestSendMessageNotifiesReceiver(t *testing.T) {
	uc, notifier := messageFixture(t)

	message, err := uc.Send(context.Background(), "buyer", SendMessageInput{
		ReceiverID: "seller",
		ListingID:  "listing-1",
		Content:    "  Mai este disponibilă motocicleta?  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Mai este disponibilă motocicleta?", message.Content)
	assert.False(t, message.Read)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "message.new", notifier.events[0])
	assert.Equal(t, "seller", notifier.users[0])
}

func TestSendMessageValidation(t *testing.T) {
	uc, _ := messageFixture(t)

	_, err := uc.Send(context.Background(), "buyer", SendMessageInput{
		ReceiverID: "seller",
		ListingID:  "listing-1",
		Content:    "   ",
	})
	assert.Error(t, err)

	_, err = uc.Send(context.Background(), "buyer", SendMessageInput{
		ReceiverID: "buyer",
		ListingID:  "listing-1",
		Content:    "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message yourself")

	_, err = uc.Send(context.Background(), "buyer", SendMessageInput{
		ReceiverID: "seller",
		ListingID:  "missing",
		Content:    "hello",
	})
	assert.Error(t, err)

	_, err = uc.Send(context.Background(), "buyer", SendMessageInput{
		ReceiverID: "ghost",
		ListingID:  "listing-1",
		Content:    "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Receiver not found")
}

func TestMarkReadReceiverOnly(t *testing.T) {
	uc, _ := messageFixture(t)

	message, err := uc.Send(context.Background(), "buyer", SendMessageInput{
		ReceiverID: "seller",
		ListingID:  "listing-1",
		Content:    "hello",
	})
	require.NoError(t, err)

	err = uc.MarkRead(context.Background(), "buyer", message.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receiver")

	require.NoError(t, uc.MarkRead(context.Background(), "seller", message.ID))

	messages, err := uc.ListForUser(context.Background(), "seller")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)
}
