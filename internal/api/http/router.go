package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/api/http/handlers"
	"github.com/qztech/asset-console/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Devices        *handlers.DevicesHandler
	Tickets        *handlers.TicketsHandler
	Technicians    *handlers.TechniciansHandler
	Maintenance    *handlers.MaintenanceHandler
	Inventories    *handlers.InventoriesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything under /api except health and
// login requires a bearer token; mutating routes additionally require a
// staff role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	staff := auth.RequireStaff()

	customers := protected.Group("/customers")
	customers.Get("/", cfg.Customers.List)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Post("/", staff, cfg.Customers.Create)
	customers.Put("/:id", staff, cfg.Customers.Update)
	customers.Delete("/:id", staff, cfg.Customers.Delete)

	devices := protected.Group("/devices")
	devices.Get("/", cfg.Devices.List)
	devices.Get("/warranty", cfg.Devices.Warranty)
	devices.Get("/:id", cfg.Devices.Get)
	devices.Post("/", staff, cfg.Devices.Create)
	devices.Put("/:id", staff, cfg.Devices.Update)
	devices.Delete("/:id", staff, cfg.Devices.Delete)

	tickets := protected.Group("/tickets")
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/statistics", cfg.Tickets.Statistics)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", staff, cfg.Tickets.Delete)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)

	technicians := protected.Group("/technicians", staff)
	technicians.Get("/", cfg.Technicians.List)
	technicians.Get("/workload", cfg.Technicians.Workload)
	technicians.Get("/:id", cfg.Technicians.Get)
	technicians.Post("/", cfg.Technicians.Create)
	technicians.Put("/:id", cfg.Technicians.Update)
	technicians.Delete("/:id", cfg.Technicians.Delete)

	maintenance := protected.Group("/maintenance", staff)
	maintenance.Get("/", cfg.Maintenance.List)
	maintenance.Get("/due", cfg.Maintenance.Due)
	maintenance.Get("/:id", cfg.Maintenance.Get)
	maintenance.Post("/", cfg.Maintenance.Create)
	maintenance.Put("/:id", cfg.Maintenance.Update)
	maintenance.Delete("/:id", cfg.Maintenance.Delete)
	maintenance.Post("/:id/execute", cfg.Maintenance.Execute)

	inventories := protected.Group("/inventories")
	inventories.Get("/", cfg.Inventories.List)
	inventories.Get("/progress", cfg.Inventories.Progress)
	inventories.Get("/statistics", cfg.Inventories.Statistics)
	inventories.Get("/:id", cfg.Inventories.Get)
	inventories.Post("/", staff, cfg.Inventories.Create)
	inventories.Put("/:id", staff, cfg.Inventories.Update)
	inventories.Delete("/:id", staff, cfg.Inventories.Delete)

	reports := protected.Group("/reports")
	reports.Get("/:report", cfg.Reports.Get)
	reports.Get("/:report/export", cfg.Reports.Export)
}
