package repository

import (
	"context"

	"nexar/internal/domain/entity"
)

// ListingFilter mirrors the structured filters the browse endpoints accept.
// Zero values mean "no constraint".
type ListingFilter struct {
	Category   string
	Brand      string
	PriceMin   float64
	PriceMax   float64
	YearMin    int
	YearMax    int
	Location   string
	SellerType string
	Condition  string
	FuelType   string
	MileageMax int
	Status     string
	// AnyStatus disables the default active-only scope when Status is
	// empty. Moderation views need every status at once.
	AnyStatus bool
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// ListAll returns every listing matching the filter, newest first.
	ListAll(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error)
}
