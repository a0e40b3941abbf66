package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexar/internal/domain/repository"
)

type AdminMiddleware struct {
	profileRepo repository.ProfileRepository
}

func NewAdminMiddleware(profileRepo repository.ProfileRepository) *AdminMiddleware {
	return &AdminMiddleware{
		profileRepo: profileRepo,
	}
}

// AdminOnly requires the authenticated caller's profile to carry the admin
// role. Must run after Authenticate.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		profile, err := m.profileRepo.GetByUserID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if profile.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
