package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{client: client}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		doc := r.client.Collection("reviews").NewDoc()
		review.ID = doc.ID
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByReviewedID(ctx context.Context, reviewedID string) ([]*entity.Review, error) {
	query := r.client.Collection("reviews").
		Where("reviewedId", "==", reviewedID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
