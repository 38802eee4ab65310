package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/service"
)

// DashboardHandler serves the stat-card aggregates.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Stats GET /api/dashboard/stats?officeId=.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext(), c.Query("officeId"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
