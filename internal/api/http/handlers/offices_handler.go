package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/directory"
)

// OfficesHandler serves the practice directory.
type OfficesHandler struct{}

// NewOfficesHandler constructs handler.
func NewOfficesHandler() *OfficesHandler {
	return &OfficesHandler{}
}

// ListOffices GET /api/offices.
func (h *OfficesHandler) ListOffices(c *fiber.Ctx) error {
	return c.JSON(directory.List())
}
