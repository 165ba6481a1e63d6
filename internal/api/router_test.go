package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/attendly/attendance-system/internal/infrastructure/config"
)

var (
	routerOnce sync.Once
	routerInst *echo.Echo
	routerErr  error
)

// testRouter wires the real router against a lazily-connected client; the
// routes exercised below never touch the store. Built once per process:
// the prometheus middleware registers its collectors in the default
// registry and must not be installed twice.
func testRouter(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
		if err != nil {
			routerErr = err
			return
		}
		cfg := &config.Config{Port: "8080", Env: "development", JWTSecret: "test-secret"}
		routerInst = NewRouter(client.Database("attendance_test"), cfg, zerolog.Nop())
	})
	if routerErr != nil {
		t.Fatalf("mongo client: %v", routerErr)
	}
	return routerInst
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func envelopeOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope json: %v\n%s", err, rec.Body.String())
	}
	return env
}

func TestRouter_Health(t *testing.T) {
	e := testRouter(t)

	rec := doRequest(e, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := envelopeOf(t, rec)
	data := env["data"].(map[string]any)
	if data["status"] != "healthy" {
		t.Fatalf("unexpected health data: %+v", data)
	}
	if data["service"] == "" || data["timestamp"] == "" {
		t.Fatalf("health data missing fields: %+v", data)
	}
	if env["message"].(map[string]any)["type"] != "info" {
		t.Fatalf("expected info message type: %+v", env["message"])
	}
}

func TestRouter_UnmatchedRoute(t *testing.T) {
	e := testRouter(t)

	rec := doRequest(e, http.MethodGet, "/api/definitely/not/here", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	env := envelopeOf(t, rec)
	slot := env["error"].(map[string]any)
	if slot["code"] != "ROUTE_NOT_FOUND" {
		t.Fatalf("expected ROUTE_NOT_FOUND, got %+v", slot)
	}
}

func TestRouter_RegisterMissingFields(t *testing.T) {
	e := testRouter(t)

	rec := doRequest(e, http.MethodPost, "/api/auth/register", `{"email":"a@x.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	env := envelopeOf(t, rec)
	if env["error"].(map[string]any)["code"] != "MISSING_FIELDS" {
		t.Fatalf("expected MISSING_FIELDS, got %+v", env["error"])
	}
	if env["status"].(map[string]any)["success"] != false {
		t.Fatalf("expected success=false")
	}
}

func TestRouter_LoginMissingCredentials(t *testing.T) {
	e := testRouter(t)

	rec := doRequest(e, http.MethodPost, "/api/auth/login", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := envelopeOf(t, rec)
	if env["error"].(map[string]any)["code"] != "MISSING_CREDENTIALS" {
		t.Fatalf("expected MISSING_CREDENTIALS, got %+v", env["error"])
	}
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	e := testRouter(t)

	rec := doRequest(e, http.MethodGet, "/api/auth/me", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	env := envelopeOf(t, rec)
	if env["error"].(map[string]any)["code"] != "NO_TOKEN" {
		t.Fatalf("expected NO_TOKEN, got %+v", env["error"])
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	e := testRouter(t)

	rec := doRequest(e, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_") {
		t.Fatalf("expected prometheus exposition output")
	}
}
