package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func pageParamsFor(query string) PageParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return PageFromQuery(e.NewContext(req, rec))
}

func TestPageFromQuery(t *testing.T) {
	assert.Equal(t, PageParams{Page: 1, Size: 20, Offset: 0}, pageParamsFor(""))
	assert.Equal(t, PageParams{Page: 3, Size: 10, Offset: 20}, pageParamsFor("page=3&limit=10"))
	// Nonsense falls back instead of erroring.
	assert.Equal(t, PageParams{Page: 1, Size: 20, Offset: 0}, pageParamsFor("page=-2&limit=9000"))
	assert.Equal(t, PageParams{Page: 2, Size: 20, Offset: 20}, pageParamsFor("page=2&limit=abc"))
}
