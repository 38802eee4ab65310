package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campbellos/backend/internal/api/http/handlers"
	"github.com/campbellos/backend/internal/auth"
	"github.com/campbellos/backend/internal/config"
	"github.com/campbellos/backend/internal/events"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/internal/seed"
	"github.com/campbellos/backend/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	sessions := auth.NewMemorySessionStore()

	authCfg := config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenTTLHours: 1,
		IdleTimeoutMinutes:  15,
		BcryptCost:          4,
	}

	userRepo := repository.NewMemoryUserRepository(seed.Users(authCfg.BcryptCost, logger))
	ticketService := service.NewTicketService(repository.NewMemoryTicketRepository(seed.Tickets()), dispatcher)
	roomService := service.NewRoomService(repository.NewMemoryRoomRepository(seed.Rooms()))
	scheduleService := service.NewScheduleService(repository.NewMemoryAppointmentRepository(seed.Appointments()))
	hrService := service.NewHRService(repository.NewMemoryEmployeeRepository(seed.Employees()))
	authService := service.NewAuthService(authCfg, userRepo, sessions)

	app := fiber.New()
	RegisterMiddlewares(app, logger, nil, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("CampbellOS API", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Offices:        handlers.NewOfficesHandler(),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Payroll:        handlers.NewPayrollHandler(service.NewPayrollService(dispatcher)),
		Rooms:          handlers.NewRoomsHandler(roomService),
		FrontDesk:      handlers.NewFrontDeskHandler(scheduleService),
		HR:             handlers.NewHRHandler(hrService),
		Dashboard:      handlers.NewDashboardHandler(service.NewDashboardService(ticketService, roomService, scheduleService, hrService)),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager(), userRepo, sessions, authCfg.IdleTimeout()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "CampbellOS API", body["app"])
}

func TestTicketLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, created := doJSON(t, app, http.MethodPost, "/api/tickets", map[string]any{
		"title":    "Monitor flickering at checkout",
		"officeId": "vernor",
		"openedBy": "Lorena (FD)",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Vernor Dental", created["officeName"])
	assert.Len(t, created["history"], 2)

	resp, updated := doJSON(t, app, http.MethodPut, "/api/tickets/"+id, map[string]any{
		"status":    "Closed",
		"updatedBy": "Manny (IT)",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Closed", updated["status"])
	history := updated["history"].([]any)
	last := history[len(history)-1].(map[string]any)
	assert.Equal(t, "Ticket closed", last["action"])

	resp, commented := doJSON(t, app, http.MethodPost, "/api/tickets/"+id+"/comments", map[string]any{
		"user":    "Manny (IT)",
		"comment": "confirmed fixed on site",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, commented["history"].([]any), 4)
}

func TestTicketErrorsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	t.Run("update missing ticket", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/tickets/T-99", map[string]any{"title": "x"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Ticket not found", body["message"])
	})

	t.Run("blank comment", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/tickets/T-1/comments", map[string]any{
			"user":    "Manny (IT)",
			"comment": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Comment is required", body["message"])
	})
}

func TestLoginAndMeOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "carolina@campbellos.com",
		"password": "campbell123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)

	t.Run("bad password", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "carolina@campbellos.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("me without token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestClockQueueOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/adp-demo/clock", map[string]any{
		"employeeAdpId": "A100001",
		"employeeName":  "Carolina",
		"eventType":     "CLOCK_IN",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ADP demo event queued", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/adp-demo/pending", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["events"].([]any), 1)

	resp, body = doJSON(t, app, http.MethodPost, "/api/adp-demo/clear", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ADP demo queue cleared", body["message"])

	_, body = doJSON(t, app, http.MethodGet, "/api/adp-demo/pending", nil)
	assert.Empty(t, body["events"])
}

func TestDashboardStatsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/dashboard/stats?officeId=campbell", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// seed data: one open campbell ticket, one room in treatment, three
	// appointments, three campbell employees plus cross-office staff
	assert.Equal(t, float64(1), body["openTickets"])
	assert.Equal(t, float64(1), body["roomsInTreatment"])
	assert.Equal(t, float64(3), body["appointments"])
	assert.Equal(t, float64(4), body["activeEmployees"])
}

func TestRoomsAndAppointmentsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/rooms", map[string]any{
		"id":       "OP-7",
		"officeId": "vernor",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPut, "/api/rooms/OP-7", map[string]any{
		"status":      "In treatment",
		"patientName": "Ana R.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "In treatment", body["status"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/rooms/OP-99", map[string]any{"status": "Empty"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Room not found", body["message"])

	resp, created := doJSON(t, app, http.MethodPost, "/api/appointments", map[string]any{
		"time":    "11:00 AM",
		"patient": "Samir K.",
		"reason":  "Limited exam",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Confirmed", created["status"])
}
