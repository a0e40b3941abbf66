package usecase

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/internal/domain/service"
	"nexar/pkg/errors"
	"nexar/pkg/logger"
)

type ListingUseCase struct {
	listingRepo   repository.ListingRepository
	profileRepo   repository.ProfileRepository
	fileService   service.FileUploadService
	maxUploadSize int64
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	profileRepo repository.ProfileRepository,
	fileService service.FileUploadService,
	maxUploadSize int64,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo:   listingRepo,
		profileRepo:   profileRepo,
		fileService:   fileService,
		maxUploadSize: maxUploadSize,
	}
}

type CreateListingInput struct {
	Title          string  `json:"title" validate:"required,min=5,max=100"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Year           int     `json:"year" validate:"required,min=1950"`
	Mileage        int     `json:"mileage" validate:"min=0"`
	Location       string  `json:"location" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	Brand          string  `json:"brand" validate:"required"`
	Model          string  `json:"model"`
	EngineCapacity int     `json:"engine_capacity"`
	FuelType       string  `json:"fuel_type"`
	Transmission   string  `json:"transmission"`
	Condition      string  `json:"condition"`
	Description    string  `json:"description" validate:"max=5000"`
}

// ListListingsResult pairs one page of listings with the total count of
// matches, so clients can render page controls.
type ListListingsResult struct {
	Listings []*entity.Listing `json:"listings"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreateListing creates a listing owned by the user's profile. Images are
// uploaded one by one; a failed upload is logged and skipped so one bad file
// does not sink the whole ad.
func (uc *ListingUseCase) CreateListing(ctx context.Context, uid string, input CreateListingInput, images []*multipart.FileHeader) (*entity.Listing, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.BadRequest("Please complete your profile first", err)
		}
		return nil, err
	}

	urls := uc.uploadImages(ctx, profile.ID, images)

	now := time.Now()
	listing := &entity.Listing{
		ID:             newID(),
		Title:          strings.TrimSpace(input.Title),
		Price:          input.Price,
		Year:           input.Year,
		Mileage:        input.Mileage,
		Location:       input.Location,
		Category:       strings.ToLower(input.Category),
		Brand:          input.Brand,
		Model:          input.Model,
		EngineCapacity: input.EngineCapacity,
		FuelType:       input.FuelType,
		Transmission:   input.Transmission,
		Condition:      input.Condition,
		Description:    input.Description,
		Images:         urls,
		SellerID:       profile.ID,
		SellerName:     profile.Name,
		SellerType:     profile.SellerType,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// UpdateListing applies the input to an existing listing after an ownership
// check. New images are appended to the existing set.
func (uc *ListingUseCase) UpdateListing(ctx context.Context, uid, listingID string, input CreateListingInput, images []*multipart.FileHeader) (*entity.Listing, error) {
	listing, profile, err := uc.ownedListing(ctx, uid, listingID)
	if err != nil {
		return nil, err
	}

	listing.Title = strings.TrimSpace(input.Title)
	listing.Price = input.Price
	listing.Year = input.Year
	listing.Mileage = input.Mileage
	listing.Location = input.Location
	listing.Category = strings.ToLower(input.Category)
	listing.Brand = input.Brand
	listing.Model = input.Model
	listing.EngineCapacity = input.EngineCapacity
	listing.FuelType = input.FuelType
	listing.Transmission = input.Transmission
	listing.Condition = input.Condition
	listing.Description = input.Description
	listing.Images = append(listing.Images, uc.uploadImages(ctx, profile.ID, images)...)
	listing.UpdatedAt = time.Now()

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// SetStatus flips a listing between active and sold.
func (uc *ListingUseCase) SetStatus(ctx context.Context, uid, listingID, status string) (*entity.Listing, error) {
	if status != "active" && status != "sold" {
		return nil, errors.BadRequest("Status must be active or sold", nil)
	}

	listing, _, err := uc.ownedListing(ctx, uid, listingID)
	if err != nil {
		return nil, err
	}

	listing.Status = status
	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// DeleteListing removes the listing and its images. Image deletes are
// best-effort; a stale object in the bucket is preferable to a dangling ad.
func (uc *ListingUseCase) DeleteListing(ctx context.Context, uid, listingID string) error {
	listing, _, err := uc.ownedListing(ctx, uid, listingID)
	if err != nil {
		return err
	}

	for _, url := range listing.Images {
		if err := uc.fileService.DeleteFile(ctx, url); err != nil {
			logger.Warn("Failed to delete listing image %s: %v", url, err)
		}
	}

	return uc.listingRepo.Delete(ctx, listingID)
}

// GetListingByID fetches one listing and bumps its view counter in the
// background. viewerUID may be empty for anonymous visitors; owners looking
// at their own ad don't count as views.
func (uc *ListingUseCase) GetListingByID(ctx context.Context, id, viewerUID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerUID != "" {
		if profile, err := uc.profileRepo.GetByUserID(ctx, viewerUID); err == nil && profile.ID == listing.SellerID {
			return listing, nil
		}
	}

	go func() {
		viewCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.listingRepo.IncrementViews(viewCtx, id); err != nil {
			logger.Warn("Failed to increment views for %s: %v", id, err)
		}
	}()

	return listing, nil
}

// SearchListings runs the free-text query and structured filters over the
// active listings, then slices the requested page.
func (uc *ListingUseCase) SearchListings(ctx context.Context, filter service.SearchFilter, page int) (*ListListingsResult, error) {
	listings, err := uc.listingRepo.ListAll(ctx, repository.ListingFilter{Status: "active"})
	if err != nil {
		return nil, err
	}

	matched := service.FilterListings(listings, filter)
	pageItems := service.PaginateListings(matched, page)
	if page < 1 {
		page = 1
	}

	return &ListListingsResult{
		Listings: pageItems,
		Total:    len(matched),
		Page:     page,
		PageSize: service.ListingsPageSize,
	}, nil
}

// ListListings pushes the structured filters down to the store and slices
// the requested page. Used by the browse view; free-text search goes through
// SearchListings.
func (uc *ListingUseCase) ListListings(ctx context.Context, filter repository.ListingFilter, page int) (*ListListingsResult, error) {
	filter.Status = "active"
	listings, err := uc.listingRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	pageItems := service.PaginateListings(listings, page)
	if page < 1 {
		page = 1
	}

	return &ListListingsResult{
		Listings: pageItems,
		Total:    len(listings),
		Page:     page,
		PageSize: service.ListingsPageSize,
	}, nil
}

// ListMyListings returns every listing owned by the user's profile,
// whatever their status.
func (uc *ListingUseCase) ListMyListings(ctx context.Context, uid string) ([]*entity.Listing, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return []*entity.Listing{}, nil
		}
		return nil, err
	}
	return uc.listingRepo.ListBySellerID(ctx, profile.ID)
}

// ownedListing resolves the listing and checks it belongs to the caller's
// profile.
func (uc *ListingUseCase) ownedListing(ctx context.Context, uid, listingID string) (*entity.Listing, *entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}

	if listing.SellerID != profile.ID {
		return nil, nil, errors.Forbidden("You don't own this listing", nil)
	}
	return listing, profile, nil
}

// uploadImages uploads each file in order, skipping failures. Oversized
// files count as failures like any other rejected upload.
func (uc *ListingUseCase) uploadImages(ctx context.Context, folder string, images []*multipart.FileHeader) []string {
	urls := make([]string, 0, len(images))
	for _, fileHeader := range images {
		if fileHeader.Size > uc.maxUploadSize {
			logger.Warn("Skipping image %s: %d bytes exceeds the %d byte limit", fileHeader.Filename, fileHeader.Size, uc.maxUploadSize)
			continue
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Warn("Failed to open uploaded image %s: %v", fileHeader.Filename, err)
			continue
		}

		url, err := uc.fileService.UploadFile(ctx, file, fileHeader.Header.Get("Content-Type"), folder)
		file.Close()
		if err != nil {
			logger.Warn("Failed to upload image %s: %v", fileHeader.Filename, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}
