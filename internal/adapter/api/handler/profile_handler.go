package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/errors"
	"nexar/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	reviewUseCase  *usecase.ReviewUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, reviewUseCase *usecase.ReviewUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		reviewUseCase:  reviewUseCase,
	}
}

func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.profileUseCase.GetOwnProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileUseCase.Update(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, errors.BadRequest("Avatar file is required", err))
	}

	profile, err := h.profileUseCase.UploadAvatar(c.Request().Context(), uid, fileHeader)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

// ListProfileReviews serves the public review list of a profile.
func (h *ProfileHandler) ListProfileReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListForProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}
