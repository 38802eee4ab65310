package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/api/dto"
	"github.com/campbellos/backend/internal/auth"
	"github.com/campbellos/backend/internal/service"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// AuthHandler serves login, logout and the current-user endpoint.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	user, token, err := h.service.Login(c.UserContext(), req.Email, req.Password, req.DeviceType)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

// Me GET /api/auth/me. Requires the auth middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return errorutil.NewUnauthorized("Missing token")
	}
	return c.JSON(fiber.Map{"user": principal.User, "deviceType": principal.DeviceType})
}

// Logout POST /api/auth/logout. Ends the session so the token stops working.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("Missing token")
	}
	if err := h.service.Logout(c.UserContext(), principal.SessionID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
