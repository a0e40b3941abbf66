package repository

import (
	"context"

	"nexar/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	// ListByReviewedID returns all reviews of a profile, newest first.
	ListByReviewedID(ctx context.Context, reviewedID string) ([]*entity.Review, error)
}
