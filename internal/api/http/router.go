package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/api/http/handlers"
	"github.com/campbellos/backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Offices        *handlers.OfficesHandler
	Tickets        *handlers.TicketsHandler
	Payroll        *handlers.PayrollHandler
	Rooms          *handlers.RoomsHandler
	FrontDesk      *handlers.FrontDeskHandler
	HR             *handlers.HRHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/auth/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	api.Post("/auth/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	api.Get("/offices", cfg.Offices.ListOffices)

	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Post("/tickets", cfg.Tickets.CreateTicket)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Put("/tickets/:id", cfg.Tickets.UpdateTicket)
	api.Post("/tickets/:id/comments", cfg.Tickets.AddComment)

	api.Post("/adp-demo/clock", cfg.Payroll.Clock)
	api.Get("/adp-demo/pending", cfg.Payroll.Pending)
	api.Post("/adp-demo/clear", cfg.Payroll.Clear)

	api.Get("/rooms", cfg.Rooms.ListRooms)
	api.Post("/rooms", cfg.Rooms.CreateRoom)
	api.Put("/rooms/:id", cfg.Rooms.UpdateRoom)

	api.Get("/appointments", cfg.FrontDesk.ListAppointments)
	api.Post("/appointments", cfg.FrontDesk.CreateAppointment)
	api.Put("/appointments/:id", cfg.FrontDesk.UpdateAppointment)

	api.Get("/hr/employees", cfg.HR.ListEmployees)
	api.Post("/hr/employees", cfg.HR.CreateEmployee)
	api.Put("/hr/employees/:id", cfg.HR.UpdateEmployee)
	api.Get("/hr/credentials", cfg.HR.Credentials)

	api.Get("/dashboard/stats", cfg.Dashboard.Stats)
}
