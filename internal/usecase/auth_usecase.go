package usecase

import (
	"context"
	"strings"
	"time"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
	"nexar/pkg/logger"
	"nexar/pkg/validation"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	authClient  AuthClient
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, authClient AuthClient) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		authClient:  authClient,
	}
}

type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	SellerType string `json:"seller_type"`
}

// AuthResult carries the tokens plus the session payload handed to clients
// after a successful auth event.
type AuthResult struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	Session      *entity.Session `json:"session"`
}

// Register validates the input, creates the auth identity, then creates the
// profile row. A profile failure after the identity exists does not fail the
// call: the user can still sign in and the missing row is healed on the next
// auth event.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if msg := validation.ValidateName(input.Name); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}
	if msg := validation.ValidateEmail(input.Email); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}
	if msg := validation.ValidatePassword(input.Password); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}
	if msg := validation.ValidatePhone(input.Phone); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}
	if msg := validation.ValidateLocation(input.Location); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}

	sellerType := input.SellerType
	if sellerType != "dealer" {
		sellerType = "individual"
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		if uc.authClient.IsEmailExists(err) {
			return nil, errors.BadRequest("Email already in use", err)
		}
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	token, refreshToken, _, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:         newID(),
		UserID:     uid,
		Name:       strings.TrimSpace(input.Name),
		Email:      input.Email,
		Phone:      input.Phone,
		Location:   input.Location,
		SellerType: sellerType,
		Role:       "user",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	session := sessionFromProfile(profile)
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		// The identity exists; the row will be recreated on next sign-in.
		logger.Error("Profile creation failed after sign-up for %s: %v", uid, err)
		session = degradedSession(uid, input.Email)
	}

	return &AuthResult{
		Token:        token,
		RefreshToken: refreshToken,
		Session:      session,
	}, nil
}

// Login authenticates the credentials and resolves the profile, creating it
// on the fly if the row is missing.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, uid, err := uc.authClient.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	session := degradedSession(uid, email)
	profile, err := uc.EnsureProfile(ctx, uid, email)
	if err != nil {
		// Degraded session; the client stays signed in with provider data.
		logger.Warn("Profile resolution failed for %s: %v", uid, err)
	} else {
		session = sessionFromProfile(profile)
	}

	return &AuthResult{
		Token:        token,
		RefreshToken: refreshToken,
		Session:      session,
	}, nil
}

// EnsureProfile returns the profile owned by the auth identity, creating a
// minimal one if none exists. It is idempotent and safe to call on every
// auth event.
func (uc *AuthUseCase) EnsureProfile(ctx context.Context, uid, email string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := time.Now()
	profile = &entity.Profile{
		ID:         newID(),
		UserID:     uid,
		Name:       nameFromEmail(email),
		Email:      email,
		SellerType: "individual",
		Role:       "user",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Created missing profile for %s", uid)
	return profile, nil
}

// Logout invalidates nothing server-side; tokens are short-lived and the
// client drops its copy. The method exists so handlers have one place to
// hook if revocation is ever added.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	logger.Debug("User logged out: %s", uid)
	return nil
}

// ResetPassword triggers a password-reset email. The response never reveals
// whether the email is registered.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, email string) error {
	if msg := validation.ValidateEmail(email); msg != "" {
		return errors.BadRequest(msg, nil)
	}

	if err := uc.authClient.SendPasswordReset(ctx, email); err != nil {
		logger.Warn("Password reset request failed for %s: %v", email, err)
	}
	return nil
}

// UpdatePassword sets a new password for the signed-in user.
func (uc *AuthUseCase) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	if msg := validation.ValidatePassword(newPassword); msg != "" {
		return errors.BadRequest(msg, nil)
	}

	if err := uc.authClient.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}
	return nil
}

func sessionFromProfile(p *entity.Profile) *entity.Session {
	return &entity.Session{
		ID:         p.UserID,
		Name:       p.Name,
		Email:      p.Email,
		SellerType: p.SellerType,
		IsLoggedIn: true,
	}
}

// degradedSession is handed out when the profile row cannot be read or
// created: provider data only, seller type defaulted.
func degradedSession(uid, email string) *entity.Session {
	return &entity.Session{
		ID:         uid,
		Name:       nameFromEmail(email),
		Email:      email,
		SellerType: "individual",
		IsLoggedIn: true,
	}
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "Utilizator"
}
