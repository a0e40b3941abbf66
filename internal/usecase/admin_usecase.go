package usecase

import (
	"context"
	"time"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
	"nexar/pkg/logger"
)

type AdminUseCase struct {
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
}

func NewAdminUseCase(listingRepo repository.ListingRepository, profileRepo repository.ProfileRepository) *AdminUseCase {
	return &AdminUseCase{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
	}
}

// ListAllListings returns listings in every status, unlike the public
// browse views which only see active ones. An empty status means no status
// filter at all.
func (uc *AdminUseCase) ListAllListings(ctx context.Context, status string) ([]*entity.Listing, error) {
	filter := repository.ListingFilter{Status: status}
	if status == "" {
		filter.AnyStatus = true
	}
	return uc.listingRepo.ListAll(ctx, filter)
}

// SetListingStatus moves a listing between active and suspended.
func (uc *AdminUseCase) SetListingStatus(ctx context.Context, listingID, status string) (*entity.Listing, error) {
	if status != "active" && status != "suspended" {
		return nil, errors.BadRequest("Status must be active or suspended", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	listing.Status = status
	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("Admin set listing %s status to %s", listingID, status)
	return listing, nil
}

// SetListingFeatured flags or unflags a listing for the featured shelf.
func (uc *AdminUseCase) SetListingFeatured(ctx context.Context, listingID string, featured bool) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	listing.Featured = featured
	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// VerifyProfile marks a profile as verified.
func (uc *AdminUseCase) VerifyProfile(ctx context.Context, profileID string, verified bool) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.Verified = verified
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteListing removes any listing regardless of owner.
func (uc *AdminUseCase) DeleteListing(ctx context.Context, listingID string) error {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return err
	}

	logger.Info("Admin deleted listing %s", listingID)
	return uc.listingRepo.Delete(ctx, listingID)
}
