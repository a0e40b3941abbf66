package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexar/internal/domain/entity"
)

func TestAdminSetListingStatus(t *testing.T) {
	listingRepo := newFakeListingRepo()
	require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{
		ID:     "listing-1",
		Status: "active",
	}))
	uc := NewAdminUseCase(listingRepo, newFakeProfileRepo())

	listing, err := uc.SetListingStatus(context.Background(), "listing-1", "suspended")
	require.NoError(t, err)
	assert.Equal(t, "suspended", listing.Status)

	_, err = uc.SetListingStatus(context.Background(), "listing-1", "sold")
	assert.Error(t, err)
}

func TestAdminListsEveryStatus(t *testing.T) {
	listingRepo := newFakeListingRepo()
	for i, listingStatus := range []string{"active", "sold", "suspended"} {
		require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{
			ID:     fmt.Sprintf("listing-%d", i),
			Status: listingStatus,
		}))
	}
	uc := NewAdminUseCase(listingRepo, newFakeProfileRepo())

	// No status filter means every status, not just active.
	all, err := uc.ListAllListings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sold, err := uc.ListAllListings(context.Background(), "sold")
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, "sold", sold[0].Status)
}

func TestAdminFeatureListing(t *testing.T) {
	listingRepo := newFakeListingRepo()
	require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{ID: "listing-1"}))
	uc := NewAdminUseCase(listingRepo, newFakeProfileRepo())

	listing, err := uc.SetListingFeatured(context.Background(), "listing-1", true)
	require.NoError(t, err)
	assert.True(t, listing.Featured)
}

func TestAdminVerifyProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profile := seedProfile(t, profileRepo, "uid-1")
	uc := NewAdminUseCase(newFakeListingRepo(), profileRepo)

	verified, err := uc.VerifyProfile(context.Background(), profile.ID, true)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
}

func TestAdminDeleteListing(t *testing.T) {
	listingRepo := newFakeListingRepo()
	require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{ID: "listing-1"}))
	uc := NewAdminUseCase(listingRepo, newFakeProfileRepo())

	require.NoError(t, uc.DeleteListing(context.Background(), "listing-1"))
	assert.Error(t, uc.DeleteListing(context.Background(), "listing-1"))
}
