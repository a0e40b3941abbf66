package entity

import (
	"time"
)

type Listing struct {
	ID             string   `json:"id" firestore:"id"`
	Title          string   `json:"title" firestore:"title"`
	Price          float64  `json:"price" firestore:"price"`
	Year           int      `json:"year" firestore:"year"`
	Mileage        int      `json:"mileage" firestore:"mileage"`
	Location       string   `json:"location" firestore:"location"`
	Category       string   `json:"category" firestore:"category"`
	Brand          string   `json:"brand" firestore:"brand"`
	Model          string   `json:"model" firestore:"model"`
	EngineCapacity int      `json:"engine_capacity" firestore:"engineCapacity"`
	FuelType       string   `json:"fuel_type" firestore:"fuelType"`
	Transmission   string   `json:"transmission" firestore:"transmission"`
	Condition      string   `json:"condition" firestore:"condition"`
	Description    string   `json:"description" firestore:"description"`
	Images         []string `json:"images" firestore:"images"`

	// SellerID references the profile row, never the auth identity directly.
	SellerID   string `json:"seller_id" firestore:"sellerId"`
	SellerName string `json:"seller_name" firestore:"sellerName"`
	SellerType string `json:"seller_type" firestore:"sellerType"` // "individual" or "dealer"

	Status         string  `json:"status" firestore:"status"` // "active", "suspended", "sold"
	Rating         float64 `json:"rating" firestore:"rating"`
	Featured       bool    `json:"featured" firestore:"featured"`
	ViewsCount     int     `json:"views_count" firestore:"viewsCount"`
	FavoritesCount int     `json:"favorites_count" firestore:"favoritesCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
