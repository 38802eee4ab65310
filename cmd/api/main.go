package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campbellos/backend/internal/api/http"
	"github.com/campbellos/backend/internal/api/http/handlers"
	"github.com/campbellos/backend/internal/auth"
	"github.com/campbellos/backend/internal/config"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/events"
	"github.com/campbellos/backend/internal/observability"
	"github.com/campbellos/backend/internal/persistence"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/internal/seed"
	"github.com/campbellos/backend/internal/service"
	"github.com/campbellos/backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Configured() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rd := persistence.NewRedis(cfg.Redis, logger)
	defer rd.Close()

	var seedTickets []domain.Ticket
	var seedRooms []domain.Room
	var seedAppts []domain.Appointment
	var seedEmployees []domain.Employee
	if cfg.App.SeedDemoData {
		seedTickets = seed.Tickets()
		seedRooms = seed.Rooms()
		seedAppts = seed.Appointments()
		seedEmployees = seed.Employees()
	}

	var ticketRepo repository.TicketRepository
	if pg.Configured() {
		ticketRepo = repository.NewPostgresTicketRepository(pg.PoolHandle())
	} else {
		ticketRepo = repository.NewMemoryTicketRepository(seedTickets)
	}
	roomRepo := repository.NewMemoryRoomRepository(seedRooms)
	apptRepo := repository.NewMemoryAppointmentRepository(seedAppts)
	employeeRepo := repository.NewMemoryEmployeeRepository(seedEmployees)
	userRepo := repository.NewMemoryUserRepository(seed.Users(cfg.Auth.BcryptCost, logger))

	var sessions auth.SessionStore
	if rd.Configured() {
		sessions = auth.NewRedisSessionStore(rd.Client)
	} else {
		sessions = auth.NewMemorySessionStore()
	}

	dispatcher := events.NewInMemoryDispatcher()

	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	payrollService := service.NewPayrollService(dispatcher)
	roomService := service.NewRoomService(roomRepo)
	scheduleService := service.NewScheduleService(apptRepo)
	hrService := service.NewHRService(employeeRepo)
	authService := service.NewAuthService(cfg.Auth, userRepo, sessions)
	dashboardService := service.NewDashboardService(ticketService, roomService, scheduleService, hrService)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo, sessions, cfg.Auth.IdleTimeout())

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("CampbellOS API", cfg.App.Version, pg, rd),
		Auth:           handlers.NewAuthHandler(authService),
		Offices:        handlers.NewOfficesHandler(),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Payroll:        handlers.NewPayrollHandler(payrollService),
		Rooms:          handlers.NewRoomsHandler(roomService),
		FrontDesk:      handlers.NewFrontDeskHandler(scheduleService),
		HR:             handlers.NewHRHandler(hrService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
