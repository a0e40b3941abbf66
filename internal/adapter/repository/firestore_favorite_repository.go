package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

// favoriteDocID builds the composite document id. Using the pair as the id
// makes the existence check a single doc get and lets concurrent inserts for
// the same pair collapse onto one document.
func favoriteDocID(userID, listingID string) string {
	return fmt.Sprintf("%s_%s", userID, listingID)
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	exists, err := r.Exists(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.BadRequest("Listing already in favorites", nil)
	}

	favorite := entity.Favorite{
		ID:        favoriteDocID(userID, listingID),
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now(),
	}

	_, err = r.client.Collection("favorites").Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return nil, errors.Internal("Failed to add favorite", err)
	}

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, listingID string) error {
	exists, err := r.Exists(ctx, userID, listingID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Favorite", nil)
	}

	_, err = r.client.Collection("favorites").Doc(favoriteDocID(userID, listingID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	doc, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, listingID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]entity.FavoriteWithListing, error) {
	docs, err := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get favorites", err)
	}

	var favorites []entity.Favorite
	listingIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var fav entity.Favorite
		if err := doc.DataTo(&fav); err != nil {
			continue
		}
		favorites = append(favorites, fav)
		listingIDs = append(listingIDs, fav.ListingID)
	}

	if len(listingIDs) == 0 {
		return []entity.FavoriteWithListing{}, nil
	}

	// Batch fetch the listings, 30 refs at a time.
	listingMap := make(map[string]*entity.Listing)
	for i := 0; i < len(listingIDs); i += 30 {
		end := i + 30
		if end > len(listingIDs) {
			end = len(listingIDs)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range listingIDs[i:end] {
			refs = append(refs, r.client.Collection("listings").Doc(id))
		}

		listingDocs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			continue
		}

		for _, doc := range listingDocs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var listing entity.Listing
			if err := doc.DataTo(&listing); err != nil {
				continue
			}
			listingMap[listing.ID] = &listing
		}
	}

	result := make([]entity.FavoriteWithListing, 0, len(favorites))
	for _, fav := range favorites {
		listing, ok := listingMap[fav.ListingID]
		if !ok {
			// Listing has been deleted; the stale favorite row is skipped.
			continue
		}
		result = append(result, entity.FavoriteWithListing{
			ID:        fav.ID,
			UserID:    fav.UserID,
			ListingID: fav.ListingID,
			Listing:   listing,
			CreatedAt: fav.CreatedAt,
		})
	}

	return result, nil
}

func (r *firestoreFavoriteRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("favorites").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count favorites", err)
	}

	return int64(len(docs)), nil
}
