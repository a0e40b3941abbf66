package handler

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) Toggle(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorited, err := h.favoriteUseCase.Toggle(c.Request().Context(), uid, c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"favorited": favorited})
}

func (h *FavoriteHandler) Check(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorited, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), uid, c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"favorited": favorited})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.ListFavorites(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, favorites)
}
