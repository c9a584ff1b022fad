package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

// AuthHandler handles login, logout, and user registration.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse keeps the {success, ...} shape the pages already consume; the
// token field is what replaced the old client-side expiry flag.
type loginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Token    string `json:"token,omitempty"`
	Message  string `json:"message,omitempty"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"required,oneof=member admin"`
}

// Login handles POST /api/login.
//
// @Summary      Authenticate with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Message: "Invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success:  true,
		Username: result.Username,
		Role:     result.Role,
		Token:    result.Token,
	})
}

// Logout handles POST /api/logout. Requires a valid session token; the
// session is revoked server-side, so the token stops working immediately.
//
// @Summary      Revoke the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context(), sidFromContext(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Success: true})
}

// Register handles POST /api/register (admin only).
//
// @Summary      Create a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "New user details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid registration details")
		}
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
