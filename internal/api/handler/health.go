package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/attendly/attendance-system/internal/api/response"
)

const serviceName = "Attendance System API"

// HealthHandler handles GET /api/health — liveness probe. Returns 200
// immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthData struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, response.New(true, http.StatusOK, healthData{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, response.Options{
		SuccessMessage: "Service is running",
		MessageType:    response.MessageTypeInfo,
	}))
}

// ReadinessHandler handles GET /api/health/ready — readiness probe.
// Verifies the store connection before declaring the service ready.
type ReadinessHandler struct {
	mongo *mongo.Database
}

func NewReadinessHandler(db *mongo.Database) *ReadinessHandler {
	return &ReadinessHandler{mongo: db}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessData struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	opts := response.Options{}
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		opts.ErrorMessage = "One or more dependencies are unavailable"
		opts.ErrorCode = "DEPENDENCY_UNAVAILABLE"
	}

	return c.JSON(httpStatus, response.New(healthy, httpStatus, readinessData{
		Status:       status,
		Dependencies: deps,
	}, opts))
}
