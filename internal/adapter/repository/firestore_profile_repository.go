package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == "" {
		doc := r.client.Collection("profiles").NewDoc()
		profile.ID = doc.ID
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection("profiles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := r.client.Collection("profiles").Where("userId", "==", userID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Profile", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := r.client.Collection("profiles").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Profile", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profile.UpdatedAt = time.Now()

	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to update profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("profiles").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete profile", err)
	}

	return nil
}

// Probe issues the cheapest possible read against the profiles collection;
// it is the connectivity check the repair routines rely on.
func (r *firestoreProfileRepository) Probe(ctx context.Context) error {
	_, err := r.client.Collection("profiles").Limit(1).Documents(ctx).GetAll()
	return err
}
