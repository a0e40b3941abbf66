package usecase

import (
	"context"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, listingRepo repository.ListingRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

// Toggle flips the favorite state for the user and listing and reports the
// resulting state. The denormalized counter on the listing is updated
// best-effort.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, userID, listingID string) (bool, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return false, err
	}

	exists, err := uc.favoriteRepo.Exists(ctx, userID, listingID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := uc.favoriteRepo.Remove(ctx, userID, listingID); err != nil {
			return true, err
		}
		uc.adjustCounter(ctx, listing, -1)
		return false, nil
	}

	if _, err := uc.favoriteRepo.Add(ctx, userID, listingID); err != nil {
		return false, err
	}
	uc.adjustCounter(ctx, listing, 1)
	return true, nil
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, userID, listingID)
}

func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, userID string) ([]entity.FavoriteWithListing, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID)
}

func (uc *FavoriteUseCase) Count(ctx context.Context, userID string) (int64, error) {
	return uc.favoriteRepo.CountByUser(ctx, userID)
}

func (uc *FavoriteUseCase) adjustCounter(ctx context.Context, listing *entity.Listing, delta int) {
	listing.FavoritesCount += delta
	if listing.FavoritesCount < 0 {
		listing.FavoritesCount = 0
	}
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		logger.Warn("Failed to update favorites count for %s: %v", listing.ID, err)
	}
}
