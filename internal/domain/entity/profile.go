package entity

import (
	"time"
)

// Profile is the application-level user record, one per auth identity. It is
// created lazily on first sign-in or sign-up if absent and mutated only by
// its owner (admins may flip the verified flag).
type Profile struct {
	ID         string `json:"id" firestore:"id"`
	UserID     string `json:"user_id" firestore:"userId"` // auth identity uid
	Name       string `json:"name" firestore:"name"`
	Email      string `json:"email" firestore:"email"`
	Phone      string `json:"phone" firestore:"phone"`
	Location   string `json:"location" firestore:"location"`
	SellerType string `json:"seller_type" firestore:"sellerType"` // "individual" or "dealer"
	Role       string `json:"role" firestore:"role"`              // "user" or "admin"
	Verified   bool   `json:"verified" firestore:"verified"`

	Rating       float64 `json:"rating" firestore:"rating"`
	ReviewsCount int     `json:"reviews_count" firestore:"reviewsCount"`
	AvatarURL    string  `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Session is the denormalized payload handed to clients after an auth event.
// The profile row stays authoritative; this exists to avoid a round trip on
// initial render.
type Session struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	SellerType string `json:"sellerType"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}
