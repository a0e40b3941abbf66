package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/internal/domain/service"
	"nexar/pkg/errors"
	"nexar/pkg/logger"
	"nexar/pkg/validation"
)

type ProfileUseCase struct {
	profileRepo   repository.ProfileRepository
	authClient    AuthClient
	fileService   service.FileUploadService
	maxUploadSize int64
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	authClient AuthClient,
	fileService service.FileUploadService,
	maxUploadSize int64,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:   profileRepo,
		authClient:    authClient,
		fileService:   fileService,
		maxUploadSize: maxUploadSize,
	}
}

type UpdateProfileInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	SellerType string `json:"seller_type"`
}

// GetOwnProfile resolves the signed-in user's profile, healing a missing row
// from the auth identity.
func (uc *ProfileUseCase) GetOwnProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	return uc.RepairProfile(ctx, uid)
}

// GetByID looks a public profile up by its row id, falling back to the auth
// uid for callers still holding the older identifier.
func (uc *ProfileUseCase) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	return uc.profileRepo.GetByUserID(ctx, id)
}

// Update applies the mutable fields after running the field validators.
// Empty fields are left unchanged.
func (uc *ProfileUseCase) Update(ctx context.Context, uid string, input UpdateProfileInput) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if msg := validation.ValidateName(input.Name); msg != "" {
			return nil, errors.BadRequest(msg, nil)
		}
		profile.Name = strings.TrimSpace(input.Name)
	}
	if input.Phone != "" {
		if msg := validation.ValidatePhone(input.Phone); msg != "" {
			return nil, errors.BadRequest(msg, nil)
		}
		profile.Phone = input.Phone
	}
	if input.Location != "" {
		if msg := validation.ValidateLocation(input.Location); msg != "" {
			return nil, errors.BadRequest(msg, nil)
		}
		profile.Location = input.Location
	}
	if input.SellerType != "" {
		if input.SellerType != "individual" && input.SellerType != "dealer" {
			return nil, errors.BadRequest("Seller type must be individual or dealer", nil)
		}
		profile.SellerType = input.SellerType
	}

	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadAvatar stores the image and records its URL on the profile. The
// previous avatar, if any, is deleted best-effort.
func (uc *ProfileUseCase) UploadAvatar(ctx context.Context, uid string, fileHeader *multipart.FileHeader) (*entity.Profile, error) {
	if fileHeader.Size > uc.maxUploadSize {
		return nil, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", uc.maxUploadSize/(1024*1024)), nil)
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.BadRequest("Failed to read uploaded file", err)
	}
	defer file.Close()

	url, err := uc.fileService.UploadFile(ctx, file, fileHeader.Header.Get("Content-Type"), profile.ID)
	if err != nil {
		return nil, err
	}

	if profile.AvatarURL != "" {
		if err := uc.fileService.DeleteFile(ctx, profile.AvatarURL); err != nil {
			logger.Warn("Failed to delete previous avatar for %s: %v", profile.ID, err)
		}
	}

	profile.AvatarURL = url
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RepairProfile recreates a missing profile row from the auth identity. If
// the row already exists it is returned unchanged.
func (uc *ProfileUseCase) RepairProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	identity, err := uc.authClient.GetIdentity(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to resolve auth identity", err)
	}

	name := identity.DisplayName
	if name == "" {
		name = nameFromEmail(identity.Email)
	}

	now := time.Now()
	profile = &entity.Profile{
		ID:         newID(),
		UserID:     uid,
		Name:       name,
		Email:      identity.Email,
		SellerType: "individual",
		Role:       "user",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Repaired missing profile for %s", uid)
	return profile, nil
}
