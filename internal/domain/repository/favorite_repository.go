package repository

import (
	"context"

	"nexar/internal/domain/entity"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error)
	Remove(ctx context.Context, userID, listingID string) error
	Exists(ctx context.Context, userID, listingID string) (bool, error)
	// ListByUser returns the user's favorites joined with their listings,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]entity.FavoriteWithListing, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
