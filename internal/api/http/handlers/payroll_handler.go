package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/api/dto"
	"github.com/campbellos/backend/internal/service"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// PayrollHandler serves the simulated ADP time-clock queue.
type PayrollHandler struct {
	service *service.PayrollService
}

// NewPayrollHandler constructs handler.
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: payrollService}
}

// Clock POST /api/adp-demo/clock.
func (h *PayrollHandler) Clock(c *fiber.Ctx) error {
	var req dto.ClockEventRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	event, err := h.service.QueueClockEvent(c.UserContext(), service.ClockInput{
		EmployeeADPID: req.EmployeeADPID,
		EmployeeName:  req.EmployeeName,
		EventType:     req.EventType,
		Timestamp:     req.Timestamp,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "ADP demo event queued",
		"event":   event,
	})
}

// Pending GET /api/adp-demo/pending.
func (h *PayrollHandler) Pending(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"events": h.service.PendingEvents(c.UserContext())})
}

// Clear POST /api/adp-demo/clear.
func (h *PayrollHandler) Clear(c *fiber.Ctx) error {
	h.service.ClearQueue(c.UserContext())
	return c.JSON(fiber.Map{"message": "ADP demo queue cleared"})
}
