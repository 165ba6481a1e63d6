package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/attendly/attendance-system/internal/api/response"
	"github.com/attendly/attendance-system/internal/core/domain"
)

// NewHTTPErrorHandler returns the catch-all translator at the end of the
// chain. Every failure — typed API errors, the closed domain error set,
// Echo's own errors — is rendered through the response envelope so the wire
// shape never varies by failure type. All errors are logged before
// translation; unexpected ones never leak their internals to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, response.New(false, status, nil, response.Options{
			ErrorMessage: msg,
			ErrorCode:    code,
			DisplayError: true,
		}))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	log.Debug().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")

	// Typed API errors already carry status and code.
	var apiErr *response.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Code, apiErr.Message
	}

	// Storage uniqueness violation: the authoritative duplicate path.
	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		return http.StatusBadRequest, "DUPLICATE_ENTRY", dup.Error()
	}

	// Closed domain error set → deterministic (status, code) pairs.
	switch {
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "EMAIL_EXISTS", "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", "User not found"
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "INVALID_ID", "Invalid ID format"
	}

	// Echo's own errors: router 404/405, bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return he.Code, "ROUTE_NOT_FOUND", "Route not found"
		default:
			return he.Code, "INTERNAL_ERROR", fmt.Sprintf("%v", he.Message)
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}
