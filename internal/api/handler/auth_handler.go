package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/attendly/attendance-system/internal/api/metrics"
	"github.com/attendly/attendance-system/internal/api/response"
	"github.com/attendly/attendance-system/internal/core/domain"
	"github.com/attendly/attendance-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Password   string `json:"password"`
	Role       string `json:"role" validate:"omitempty,oneof=employee admin"`
	Department string `json:"department"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authData is the payload both register and login return.
type authData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Token      string `json:"token"`
}

// Register creates a new user account and returns it with a signed token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	// Presence comes first: a missing field is MISSING_FIELDS, not a
	// validation failure.
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return response.NewError(http.StatusBadRequest, "MISSING_FIELDS", "Name, email, and password are required")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role, req.Department)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, response.New(true, http.StatusCreated, toAuthData(user, token), response.Options{
		SuccessMessage: "User registered successfully",
		MessageType:    response.MessageTypeSuccess,
		DisplayMessage: true,
	}))
}

// Login authenticates a user and returns it with a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if req.Email == "" || req.Password == "" {
		return response.NewError(http.StatusBadRequest, "MISSING_CREDENTIALS", "Email and password are required")
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, response.New(true, http.StatusOK, toAuthData(user, token), response.Options{
		SuccessMessage: "Login successful",
		MessageType:    response.MessageTypeSuccess,
		DisplayMessage: true,
	}))
}

// Me echoes the identity resolved by the Auth middleware.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.New(true, http.StatusOK, identity, response.Options{}))
}

// Users lists registered users. Admin only.
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /api/auth/users [get]
func (h *AuthHandler) Users(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	users, total, err := h.authService.Users(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}

	return c.JSON(http.StatusOK, response.New(true, http.StatusOK, users, response.Options{
		Pagination: response.Pagination{Page: page, Limit: limit, Total: total},
	}))
}

func toAuthData(user *domain.User, token string) authData {
	return authData{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		Token:      token,
	}
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
