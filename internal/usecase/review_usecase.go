package usecase

import (
	"context"
	"math"
	"time"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
	"nexar/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	profileRepo repository.ProfileRepository
	listingRepo repository.ListingRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	profileRepo repository.ProfileRepository,
	listingRepo repository.ListingRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		listingRepo: listingRepo,
	}
}

type CreateReviewInput struct {
	ReviewedID string `json:"reviewed_id" validate:"required"`
	ListingID  string `json:"listing_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"max=2000"`
}

// Create stores a review and recomputes the reviewed profile's mean rating
// and review count. The recomputation reads all reviews back; concurrent
// writers may interleave, in which case the last recomputation wins and the
// aggregate self-corrects on the next review.
func (uc *ReviewUseCase) Create(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	reviewed, err := uc.resolveProfile(ctx, input.ReviewedID)
	if err != nil {
		return nil, err
	}
	if reviewerID == reviewed.UserID {
		return nil, errors.BadRequest("You cannot review yourself", nil)
	}

	if _, err := uc.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:         newID(),
		ReviewerID: reviewerID,
		ReviewedID: reviewed.UserID,
		ListingID:  input.ListingID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// The review exists either way; a failed aggregate update is logged and
	// corrected by the next one.
	if err := uc.recomputeRating(ctx, reviewed.UserID); err != nil {
		logger.Error("Failed to recompute rating for %s: %v", reviewed.UserID, err)
	}

	return review, nil
}

// ListForProfile returns a profile's reviews, newest first. The id is
// resolved the same way the public profile endpoint resolves its id, so
// both row id and auth uid work.
func (uc *ReviewUseCase) ListForProfile(ctx context.Context, id string) ([]*entity.Review, error) {
	profile, err := uc.resolveProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByReviewedID(ctx, profile.UserID)
}

// resolveProfile accepts either the auth uid or the profile row id, since
// clients hold the row id from listing seller references.
func (uc *ReviewUseCase) resolveProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	return uc.profileRepo.GetByID(ctx, id)
}

// recomputeRating recalculates the mean rating from all stored reviews and
// writes it to the profile, rounded to two decimals.
func (uc *ReviewUseCase) recomputeRating(ctx context.Context, reviewedID string) error {
	reviews, err := uc.reviewRepo.ListByReviewedID(ctx, reviewedID)
	if err != nil {
		return err
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, reviewedID)
	if err != nil {
		return err
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	profile.ReviewsCount = len(reviews)
	profile.Rating = 0
	if len(reviews) > 0 {
		avg := float64(sum) / float64(len(reviews))
		profile.Rating = math.Round(avg*100) / 100
	}
	profile.UpdatedAt = time.Now()

	return uc.profileRepo.Update(ctx, profile)
}
