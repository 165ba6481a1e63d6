package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/attendly/attendance-system/internal/api/handler"
	"github.com/attendly/attendance-system/internal/api/middleware"
	"github.com/attendly/attendance-system/internal/core/service"
	"github.com/attendly/attendance-system/internal/infrastructure/config"
	mongodb "github.com/attendly/attendance-system/internal/infrastructure/db/mongo"
)

const tokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// Unmatched paths fall through to the centralized error handler, which
// renders the 404 ROUTE_NOT_FOUND envelope.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS()) // permissive: any origin
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(users, cfg.JWTSecret, tokenTTL)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(users, cfg.JWTSecret)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", handler.NewHealthHandler().Liveness)
	apiGroup.GET("/health/ready", handler.NewReadinessHandler(db).Readiness)

	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware)
	auth.GET("/users", authHandler.Users, authMiddleware, middleware.RequireAdmin())

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Frontend capture flow (static) ---
	e.Static("/", "web")

	return e
}
