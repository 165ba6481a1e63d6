package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/attendly/attendance-system/internal/api/middleware"
	"github.com/attendly/attendance-system/internal/api/response"
	"github.com/attendly/attendance-system/internal/core/domain"
)

// ctxIdentity extracts the identity attached by the Auth middleware and
// fast-fails when it is absent, instead of trusting route ordering.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return nil, response.NewError(http.StatusUnauthorized, "AUTH_ERROR", "Missing authentication claims")
	}
	return identity, nil
}
