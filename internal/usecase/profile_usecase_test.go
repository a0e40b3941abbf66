package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileValidatesFields(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	seedProfile(t, profileRepo, "uid-1")
	uc := NewProfileUseCase(profileRepo, newFakeAuthClient(), newFakeFileService(), testMaxUploadSize)

	_, err := uc.Update(context.Background(), "uid-1", UpdateProfileInput{Phone: "0190454647"})
	assert.Error(t, err)

	_, err = uc.Update(context.Background(), "uid-1", UpdateProfileInput{Location: "Atlantis"})
	assert.Error(t, err)

	_, err = uc.Update(context.Background(), "uid-1", UpdateProfileInput{SellerType: "fleet"})
	assert.Error(t, err)

	updated, err := uc.Update(context.Background(), "uid-1", UpdateProfileInput{
		Name:       "Maria Ionescu",
		Phone:      "0722334455",
		Location:   "Cluj-Napoca",
		SellerType: "dealer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Ionescu", updated.Name)
	assert.Equal(t, "dealer", updated.SellerType)
}

func TestUpdateProfileLeavesEmptyFieldsAlone(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profile := seedProfile(t, profileRepo, "uid-1")
	uc := NewProfileUseCase(profileRepo, newFakeAuthClient(), newFakeFileService(), testMaxUploadSize)

	updated, err := uc.Update(context.Background(), "uid-1", UpdateProfileInput{Phone: "0722334455"})
	require.NoError(t, err)
	assert.Equal(t, profile.Name, updated.Name)
	assert.Equal(t, "0722334455", updated.Phone)
}

func TestUploadAvatarEnforcesSizeCap(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	seedProfile(t, profileRepo, "uid-1")
	fileService := newFakeFileService()
	uc := NewProfileUseCase(profileRepo, newFakeAuthClient(), fileService, testMaxUploadSize)

	_, err := uc.UploadAvatar(context.Background(), "uid-1", makeSizedFileHeader(t, "big.jpg", int(testMaxUploadSize)+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
	assert.Zero(t, fileService.uploads)

	updated, err := uc.UploadAvatar(context.Background(), "uid-1", makeSizedFileHeader(t, "small.jpg", 128))
	require.NoError(t, err)
	assert.NotEmpty(t, updated.AvatarURL)
}

func TestRepairProfileRecreatesRow(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	authClient := newFakeAuthClient()
	uc := NewProfileUseCase(profileRepo, authClient, newFakeFileService(), testMaxUploadSize)

	uid, err := authClient.CreateUser(context.Background(), "dan@example.com", "Abcdef12", "")
	require.NoError(t, err)

	profile, err := uc.RepairProfile(context.Background(), uid)
	require.NoError(t, err)
	// No display name on the identity: fall back to the email local part.
	assert.Equal(t, "dan", profile.Name)
	assert.Equal(t, "individual", profile.SellerType)
	assert.Equal(t, "user", profile.Role)

	again, err := uc.RepairProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestGetByIDFallsBackToUserID(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profile := seedProfile(t, profileRepo, "uid-1")
	uc := NewProfileUseCase(profileRepo, newFakeAuthClient(), newFakeFileService(), testMaxUploadSize)

	byRow, err := uc.GetByID(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byRow.ID)

	byUID, err := uc.GetByID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byUID.ID)
}
