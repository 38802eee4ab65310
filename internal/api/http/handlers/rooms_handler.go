package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/api/dto"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/service"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// RoomsHandler serves the clinical room board.
type RoomsHandler struct {
	service *service.RoomService
}

// NewRoomsHandler constructs handler.
func NewRoomsHandler(roomService *service.RoomService) *RoomsHandler {
	return &RoomsHandler{service: roomService}
}

// ListRooms GET /api/rooms?officeId=&status=.
func (h *RoomsHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.service.List(c.UserContext(), c.Query("officeId"), domain.RoomStatus(c.Query("status")))
	if err != nil {
		return err
	}
	return c.JSON(rooms)
}

// CreateRoom POST /api/rooms.
func (h *RoomsHandler) CreateRoom(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	room, err := h.service.Create(c.UserContext(), service.RoomCreateInput{
		ID:          req.ID,
		OfficeID:    req.OfficeID,
		PatientName: req.PatientName,
		Provider:    req.Provider,
		Assistant:   req.Assistant,
		Hygienist:   req.Hygienist,
		Status:      req.Status,
		TVStatus:    req.TVStatus,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(room)
}

// UpdateRoom PUT /api/rooms/:id.
func (h *RoomsHandler) UpdateRoom(c *fiber.Ctx) error {
	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	room, err := h.service.Update(c.UserContext(), c.Params("id"), service.RoomUpdateInput{
		PatientName: req.PatientName,
		Provider:    req.Provider,
		Assistant:   req.Assistant,
		Hygienist:   req.Hygienist,
		Status:      req.Status,
		TVStatus:    req.TVStatus,
		Notes:       req.Notes,
		LastEvent:   req.LastEvent,
	})
	if err != nil {
		return err
	}
	return c.JSON(room)
}
