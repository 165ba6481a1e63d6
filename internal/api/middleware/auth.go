package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/attendly/attendance-system/internal/api/metrics"
	"github.com/attendly/attendance-system/internal/api/response"
	"github.com/attendly/attendance-system/internal/core/domain"
	"github.com/attendly/attendance-system/internal/core/ports"
)

// identityKey is the echo.Context key the resolved user is attached under.
const identityKey = "identity"

// reject records the rejection metric and returns the typed API error the
// central error handler renders.
func reject(status int, code, message string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(code).Inc()
	return response.NewError(status, code, message)
}

// Auth validates the bearer token, resolves the embedded user id against the
// store (password hash excluded) and attaches the identity to the context.
//
// Rejections: NO_TOKEN (401) for a missing/ill-formed header, INVALID_TOKEN
// (401) for bad signature or malformed token, TOKEN_EXPIRED (401) past the
// expiry, USER_NOT_FOUND (401) when the subject no longer exists, AUTH_ERROR
// (500) for anything else. Any syntactically valid, unexpired token for an
// existing user is accepted — there is no revocation list.
func Auth(users ports.UserRepository, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(http.StatusUnauthorized, "NO_TOKEN", "No token provided. Please authenticate.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return reject(http.StatusUnauthorized, "NO_TOKEN", "No token provided. Please authenticate.")
			}

			claims := &jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					return reject(http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired. Please login again.")
				case errors.Is(err, jwt.ErrTokenMalformed),
					errors.Is(err, jwt.ErrTokenSignatureInvalid),
					errors.Is(err, jwt.ErrSignatureInvalid),
					errors.Is(err, jwt.ErrTokenUnverifiable):
					return reject(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token. Please login again.")
				default:
					return reject(http.StatusInternalServerError, "AUTH_ERROR", "Authentication failed")
				}
			}
			if !tkn.Valid {
				return reject(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token. Please login again.")
			}

			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
					return reject(http.StatusUnauthorized, "USER_NOT_FOUND", "User not found. Invalid token.")
				}
				return reject(http.StatusInternalServerError, "AUTH_ERROR", "Authentication failed")
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// Identity returns the user attached by Auth, or false when the middleware
// has not run on this request.
func Identity(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(identityKey).(*domain.User)
	return user, ok
}

// SetIdentity attaches a resolved user to the context. Exported for tests
// that exercise handlers behind the auth gate without running it.
func SetIdentity(c echo.Context, user *domain.User) {
	c.Set(identityKey, user)
}
