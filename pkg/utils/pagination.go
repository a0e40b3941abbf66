package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageParams carries a client-chosen page and size. The public browse views
// page with a fixed size; the moderation view goes through here instead.
type PageParams struct {
	Page   int
	Size   int
	Offset int
}

// PageFromQuery reads page and limit from the query string. Out-of-range
// values fall back rather than erroring: page clamps to 1, size to the
// default.
func PageFromQuery(c echo.Context) PageParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("limit"))

	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	return PageParams{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}
}
