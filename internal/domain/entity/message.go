package entity

import "time"

type Message struct {
	ID         string    `json:"id" firestore:"id"`
	SenderID   string    `json:"sender_id" firestore:"senderId"`
	ReceiverID string    `json:"receiver_id" firestore:"receiverId"`
	ListingID  string    `json:"listing_id" firestore:"listingId"`
	Subject    string    `json:"subject,omitempty" firestore:"subject,omitempty"`
	Content    string    `json:"content" firestore:"content"`
	Read       bool      `json:"read" firestore:"read"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
