package entity

import (
	"time"
)

// Review is an append-only rating of a profile, tied to a listing. Creating
// one triggers a recomputation of the reviewed profile's mean rating and
// review count.
type Review struct {
	ID         string    `json:"id" firestore:"id"`
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	ReviewedID string    `json:"reviewed_id" firestore:"reviewedId"`
	ListingID  string    `json:"listing_id" firestore:"listingId"`
	Rating     int       `json:"rating" firestore:"rating"` // 1-5
	Comment    string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
