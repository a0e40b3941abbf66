package repository

import (
	"context"

	"nexar/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	// GetByUserID resolves the profile owned by an auth identity.
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id string) error
	// Probe is a cheap existence check used by the connection-check routine.
	Probe(ctx context.Context) error
}
