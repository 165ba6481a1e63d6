package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/attendly/attendance-system/internal/api/response"
)

// RequireAdmin restricts a route to identities with the admin role. It must
// be registered after Auth; rather than trusting route ordering it fails
// fast with 401 when no identity is attached.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return response.NewError(http.StatusUnauthorized, "AUTH_ERROR", "Missing authentication claims")
			}
			if !identity.IsAdmin() {
				return response.NewError(http.StatusForbidden, "ADMIN_ACCESS_REQUIRED", "Access denied. Admin privileges required.")
			}
			return next(c)
		}
	}
}
