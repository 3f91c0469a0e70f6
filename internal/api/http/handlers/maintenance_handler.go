package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/api/dto"
	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/service"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// MaintenanceHandler manages maintenance schedule endpoints.
type MaintenanceHandler struct {
	service *service.MaintenanceService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: maintenanceService}
}

// List GET /maintenance.
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	filter := repository.MaintenanceFilter{
		DeviceID:  c.QueryInt("deviceId"),
		Frequency: domain.MaintenanceFrequency(c.Query("frequency")),
		Status:    domain.MaintenanceScheduleStatus(c.Query("status")),
	}
	schedules, err := h.service.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedules})
}

// Get GET /maintenance/:id.
func (h *MaintenanceHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	schedule, err := h.service.Get(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedule})
}

// Create POST /maintenance.
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	schedule, err := h.service.Create(c.UserContext(), actor, maintenanceInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": schedule})
}

// Update PUT /maintenance/:id.
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	schedule, err := h.service.Update(c.UserContext(), actor, id, maintenanceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedule})
}

// Delete DELETE /maintenance/:id.
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Execute POST /maintenance/:id/execute.
func (h *MaintenanceHandler) Execute(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ExecuteMaintenanceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	executedAt := time.Now()
	if req.ExecutedAt != nil {
		executedAt = *req.ExecutedAt
	}
	schedule, err := h.service.Execute(c.UserContext(), actor, id, executedAt)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedule})
}

// Due GET /maintenance/due.
func (h *MaintenanceHandler) Due(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	overview, err := h.service.DueView(c.UserContext(), actor, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}

func maintenanceInput(req dto.MaintenanceRequest) service.MaintenanceInput {
	return service.MaintenanceInput{
		DeviceID:           req.DeviceID,
		MaintenanceType:    req.MaintenanceType,
		Frequency:          req.Frequency,
		CustomDays:         req.CustomDays,
		Description:        req.Description,
		AssignedTechnician: req.AssignedTechnician,
		NextMaintenance:    req.NextMaintenance,
		Active:             req.Active,
	}
}
