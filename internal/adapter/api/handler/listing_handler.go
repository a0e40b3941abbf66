package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"nexar/internal/domain/repository"
	"nexar/internal/domain/service"
	"nexar/internal/usecase"
	"nexar/pkg/response"
)

// maxListingImages caps how many files one ad may attach.
const maxListingImages = 10

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

// ListListings serves the public browse view: structured filters plus a
// fixed page size.
func (h *ListingHandler) ListListings(c echo.Context) error {
	filter := repository.ListingFilter{
		Category:   c.QueryParam("category"),
		Brand:      c.QueryParam("brand"),
		Location:   c.QueryParam("location"),
		SellerType: c.QueryParam("seller_type"),
		Condition:  c.QueryParam("condition"),
		FuelType:   c.QueryParam("fuel_type"),
	}
	filter.PriceMin, _ = strconv.ParseFloat(c.QueryParam("price_min"), 64)
	filter.PriceMax, _ = strconv.ParseFloat(c.QueryParam("price_max"), 64)
	filter.YearMin, _ = strconv.Atoi(c.QueryParam("year_min"))
	filter.YearMax, _ = strconv.Atoi(c.QueryParam("year_max"))
	filter.MileageMax, _ = strconv.Atoi(c.QueryParam("mileage_max"))

	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.listingUseCase.ListListings(c.Request().Context(), filter, page)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, result.Listings, int64(result.Total), result.Page, result.PageSize)
}

// SearchListings adds a free-text query on top of the structured filters.
func (h *ListingHandler) SearchListings(c echo.Context) error {
	filter := service.SearchFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		Location: c.QueryParam("location"),
	}
	filter.PriceMin, _ = strconv.ParseFloat(c.QueryParam("price_min"), 64)
	filter.PriceMax, _ = strconv.ParseFloat(c.QueryParam("price_max"), 64)
	filter.YearMin, _ = strconv.Atoi(c.QueryParam("year_min"))
	filter.YearMax, _ = strconv.Atoi(c.QueryParam("year_max"))

	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.listingUseCase.SearchListings(c.Request().Context(), filter, page)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, result.Listings, int64(result.Total), result.Page, result.PageSize)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	// Anonymous visitors have no uid on the context.
	uid, _ := c.Get("uid").(string)

	listing, err := h.listingUseCase.GetListingByID(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	uid := c.Get("uid").(string)

	listings, err := h.listingUseCase.ListMyListings(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

// CreateListing accepts multipart form data: the listing fields plus up to
// ten files under the "images" key.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	input, images, err := h.bindListingForm(c)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), uid, *input, images)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	input, images, err := h.bindListingForm(c)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), uid, c.Param("id"), *input, images)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) SetListingStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Status string `json:"status" validate:"required,oneof=active sold"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.SetStatus(c.Request().Context(), uid, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Listing deleted"})
}

// bindListingForm reads the listing fields and image files out of a
// multipart form. Numeric fields arrive as strings; parse failures fall
// back to zero and are caught by validation.
func (h *ListingHandler) bindListingForm(c echo.Context) (*usecase.CreateListingInput, []*multipart.FileHeader, error) {
	input := &usecase.CreateListingInput{
		Title:        c.FormValue("title"),
		Location:     c.FormValue("location"),
		Category:     c.FormValue("category"),
		Brand:        c.FormValue("brand"),
		Model:        c.FormValue("model"),
		FuelType:     c.FormValue("fuel_type"),
		Transmission: c.FormValue("transmission"),
		Condition:    c.FormValue("condition"),
		Description:  c.FormValue("description"),
	}
	input.Price, _ = strconv.ParseFloat(c.FormValue("price"), 64)
	input.Year, _ = strconv.Atoi(c.FormValue("year"))
	input.Mileage, _ = strconv.Atoi(c.FormValue("mileage"))
	input.EngineCapacity, _ = strconv.Atoi(c.FormValue("engine_capacity"))

	if err := c.Validate(input); err != nil {
		return nil, nil, err
	}

	var images []*multipart.FileHeader
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		images = form.File["images"]
		if len(images) > maxListingImages {
			images = images[:maxListingImages]
		}
	}

	return input, images, nil
}
