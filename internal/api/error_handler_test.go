package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/attendly/attendance-system/internal/api/response"
	"github.com/attendly/attendance-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env map[string]any
	if jerr := json.Unmarshal(rec.Body.Bytes(), &env); jerr != nil {
		t.Fatalf("invalid envelope json: %v", jerr)
	}
	return rec.Code, env
}

func errorSlot(t *testing.T, env map[string]any) (code string, text string) {
	t.Helper()
	slot := env["error"].(map[string]any)
	if slot["display"] != true {
		t.Fatalf("error.display must be true on failures: %+v", slot)
	}
	c, _ := slot["code"].(string)
	return c, slot["text"].(string)
}

func TestErrorHandler_TypedAPIError(t *testing.T) {
	status, env := renderError(t, response.NewError(http.StatusUnauthorized, "NO_TOKEN", "No token provided. Please authenticate."))
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	code, text := errorSlot(t, env)
	if code != "NO_TOKEN" || text != "No token provided. Please authenticate." {
		t.Fatalf("unexpected error slot: %s %q", code, text)
	}
}

func TestErrorHandler_DuplicateKey(t *testing.T) {
	status, env := renderError(t, &domain.DuplicateKeyError{Field: "email"})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	code, text := errorSlot(t, env)
	if code != "DUPLICATE_ENTRY" {
		t.Fatalf("expected DUPLICATE_ENTRY, got %s", code)
	}
	// The message names the violated field.
	if text != "email already exists" {
		t.Fatalf("unexpected message: %q", text)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrEmailExists, http.StatusBadRequest, "EMAIL_EXISTS"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
		{domain.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	}
	for _, tc := range cases {
		status, env := renderError(t, tc.err)
		if status != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, status)
		}
		code, _ := errorSlot(t, env)
		if code != tc.code {
			t.Fatalf("%v: expected %s, got %s", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	status, env := renderError(t, echo.ErrNotFound)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	code, text := errorSlot(t, env)
	if code != "ROUTE_NOT_FOUND" || text != "Route not found" {
		t.Fatalf("unexpected slot: %s %q", code, text)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	status, env := renderError(t, errors.New("store exploded"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	code, text := errorSlot(t, env)
	if code != "INTERNAL_ERROR" {
		t.Fatalf("expected INTERNAL_ERROR, got %s", code)
	}
	// Internals must not leak to the client.
	if text != "Internal server error" {
		t.Fatalf("unexpected message: %q", text)
	}
	if env["data"] != nil {
		t.Fatalf("expected null data on errors")
	}
}
