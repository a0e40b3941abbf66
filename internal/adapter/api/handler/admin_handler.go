package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/response"
	"nexar/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListListings(c echo.Context) error {
	listings, err := h.adminUseCase.ListAllListings(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	// The moderation view pages with a client-chosen size, unlike the
	// public views with their fixed one.
	params := utils.PageFromQuery(c)
	total := len(listings)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.Size
	if end > total {
		end = total
	}

	return response.Paginated(c, listings[start:end], int64(total), params.Page, params.Size)
}

func (h *AdminHandler) SetListingStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required,oneof=active suspended"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.adminUseCase.SetListingStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *AdminHandler) SetListingFeatured(c echo.Context) error {
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.adminUseCase.SetListingFeatured(c.Request().Context(), c.Param("id"), req.Featured)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *AdminHandler) VerifyProfile(c echo.Context) error {
	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.adminUseCase.VerifyProfile(c.Request().Context(), c.Param("id"), req.Verified)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *AdminHandler) DeleteListing(c echo.Context) error {
	if err := h.adminUseCase.DeleteListing(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Listing deleted"})
}
