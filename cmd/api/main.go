package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/qztech/asset-console/internal/api/http"
	"github.com/qztech/asset-console/internal/api/http/handlers"
	"github.com/qztech/asset-console/internal/auth"
	"github.com/qztech/asset-console/internal/config"
	"github.com/qztech/asset-console/internal/events"
	"github.com/qztech/asset-console/internal/observability"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/service"
	"github.com/qztech/asset-console/internal/worker"
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

	store := repository.NewMemoryStore()
	if cfg.App.SeedDemoData {
		store.Seed(time.Now())
		logger.Info("demo dataset seeded")
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg.Auth)
	customerService := service.NewCustomerService(store.Customers())
	deviceService := service.NewDeviceService(store.Devices(), store.Customers())
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:     store.Tickets(),
		CustomerRepo:   store.Customers(),
		DeviceRepo:     store.Devices(),
		TechnicianRepo: store.Technicians(),
		Dispatcher:     dispatcher,
	})
	technicianService := service.NewTechnicianService(store.Technicians())
	maintenanceService := service.NewMaintenanceService(store.Maintenances(), store.Devices(), dispatcher)
	inventoryService := service.NewInventoryService(store.Inventories(), store.Customers(), store.Devices(), dispatcher)
	reportService := service.NewReportService(store.Devices(), store.Tickets())
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService, logger)

	reminder := worker.NewReminderScheduler(store.Devices(), store.Maintenances(), dispatcher, logger, cfg.Reminder)
	if err := reminder.Start(ctx); err != nil {
		logger.Fatal("failed to start reminder scheduler", zap.Error(err))
	}
	defer func() {
		if err := reminder.Stop(); err != nil {
			logger.Warn("reminder scheduler shutdown", zap.Error(err))
		}
	}()

	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Auth:           handlers.NewAuthHandler(authService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Devices:        handlers.NewDevicesHandler(deviceService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Technicians:    handlers.NewTechniciansHandler(technicianService),
		Maintenance:    handlers.NewMaintenanceHandler(maintenanceService),
		Inventories:    handlers.NewInventoriesHandler(inventoryService),
		Reports:        handlers.NewReportsHandler(reportService, metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
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
