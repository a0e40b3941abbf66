package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexar/pkg/errors"
)

type stubVerifier struct {
	uid string
	err error
}

func (s stubVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	return s.uid, s.err
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		uid, _ := c.Get("uid").(string)
		return c.String(http.StatusOK, uid)
	}
	return rec, mw(next)(c)
}

func runAuth(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	return runMiddleware(t, m.Authenticate, header)
}

func TestAuthenticateSetsUID(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{uid: "uid-1"})

	rec, err := runAuth(t, m, "Bearer good-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", rec.Body.String())
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{uid: "uid-1"})

	_, err := runAuth(t, m, "")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateRejectsBadFormat(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{uid: "uid-1"})

	_, err := runAuth(t, m, "Token abc")
	assert.Error(t, err)
}

func TestOptionalAuthenticateSetsUIDWhenPresent(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{uid: "uid-1"})

	rec, err := runMiddleware(t, m.OptionalAuthenticate, "Bearer good-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", rec.Body.String())
}

func TestOptionalAuthenticateAllowsAnonymous(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{err: errors.Unauthorized("expired", nil)})

	rec, err := runMiddleware(t, m.OptionalAuthenticate, "")
	require.NoError(t, err)
	assert.Empty(t, rec.Body.String())

	// A bad token degrades to anonymous instead of failing.
	rec, err = runMiddleware(t, m.OptionalAuthenticate, "Bearer expired-token")
	require.NoError(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{err: errors.Unauthorized("expired", nil)})

	_, err := runAuth(t, m, "Bearer expired-token")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
