package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CreateReviewInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Create(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}
