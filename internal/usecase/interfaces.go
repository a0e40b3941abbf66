package usecase

import (
	"context"

	"nexar/internal/domain/entity"
)

// AuthClient is the auth-provider port. The concrete implementation lives in
// internal/infrastructure/firebase.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetIdentity(ctx context.Context, uid string) (*entity.Identity, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	SignInWithEmailPassword(email, password string) (string, string, string, error)
	SendPasswordReset(ctx context.Context, email string) error
	IsEmailExists(err error) bool
}

// Remediator files a request to reapply the backend's access policies. The
// connection-check routine invokes it when a probe fails.
type Remediator interface {
	RequestRepair(ctx context.Context) error
}

// Notifier pushes best-effort events to connected clients.
type Notifier interface {
	NotifyUser(userID, event string, payload interface{})
}
