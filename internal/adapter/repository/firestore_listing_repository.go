package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection("listings").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

// ListAll fetches listings newest first. Equality filters are pushed to the
// store; price/year ranges and the location substring are applied after the
// fetch since the store limits range predicates to a single field and has no
// case-insensitive contains.
func (r *firestoreListingRepository) ListAll(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	query := r.client.Collection("listings").Query

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	} else if !filter.AnyStatus {
		query = query.Where("status", "==", "active")
	}

	if filter.Category != "" {
		query = query.Where("category", "==", strings.ToLower(filter.Category))
	}
	if filter.Brand != "" {
		query = query.Where("brand", "==", filter.Brand)
	}
	if filter.SellerType != "" {
		query = query.Where("sellerType", "==", filter.SellerType)
	}
	if filter.Condition != "" {
		query = query.Where("condition", "==", filter.Condition)
	}
	if filter.FuelType != "" {
		query = query.Where("fuelType", "==", filter.FuelType)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse listing data", err)
		}
		if !matchesRanges(&listing, filter) {
			continue
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

func matchesRanges(l *entity.Listing, f repository.ListingFilter) bool {
	if f.PriceMin > 0 && l.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && l.Price > f.PriceMax {
		return false
	}
	if f.YearMin > 0 && l.Year < f.YearMin {
		return false
	}
	if f.YearMax > 0 && l.Year > f.YearMax {
		return false
	}
	if f.MileageMax > 0 && l.Mileage > f.MileageMax {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Update(ctx, []firestore.Update{
		{Path: "viewsCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment listing views", err)
	}

	return nil
}

func (r *firestoreListingRepository) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	query := r.client.Collection("listings").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate seller listings", err)
		}
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}
