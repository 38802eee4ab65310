package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/api/dto"
	"github.com/campbellos/backend/internal/service"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// FrontDeskHandler serves the appointment schedule.
type FrontDeskHandler struct {
	service *service.ScheduleService
}

// NewFrontDeskHandler constructs handler.
func NewFrontDeskHandler(scheduleService *service.ScheduleService) *FrontDeskHandler {
	return &FrontDeskHandler{service: scheduleService}
}

// ListAppointments GET /api/appointments?officeId=.
func (h *FrontDeskHandler) ListAppointments(c *fiber.Ctx) error {
	appts, err := h.service.List(c.UserContext(), c.Query("officeId"))
	if err != nil {
		return err
	}
	return c.JSON(appts)
}

// CreateAppointment POST /api/appointments.
func (h *FrontDeskHandler) CreateAppointment(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	appt, err := h.service.Create(c.UserContext(), service.AppointmentCreateInput{
		Time:     req.Time,
		Patient:  req.Patient,
		Reason:   req.Reason,
		Badge:    req.Badge,
		Status:   req.Status,
		OfficeID: req.OfficeID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(appt)
}

// UpdateAppointment PUT /api/appointments/:id.
func (h *FrontDeskHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorutil.NewValidationError("invalid appointment id", nil)
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	appt, err := h.service.Update(c.UserContext(), id, service.AppointmentUpdateInput{
		Time:    req.Time,
		Patient: req.Patient,
		Reason:  req.Reason,
		Badge:   req.Badge,
		Status:  req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(appt)
}
