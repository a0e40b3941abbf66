package handler

import (
	"github.com/labstack/echo/v4"

	"nexar/pkg/response"
	"nexar/pkg/validation"
)

type CitiesHandler struct{}

func NewCitiesHandler() *CitiesHandler {
	return &CitiesHandler{}
}

// Suggest serves the city typeahead. Without a query it returns the full
// list, with one it returns up to ten substring matches.
func (h *CitiesHandler) Suggest(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return response.Success(c, validation.RomanianCities)
	}
	return response.Success(c, validation.SuggestCities(q))
}
