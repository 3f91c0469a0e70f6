package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/api/dto"
	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/service"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// InventoriesHandler manages inventory session endpoints.
type InventoriesHandler struct {
	service *service.InventoryService
}

// NewInventoriesHandler constructs handler.
func NewInventoriesHandler(inventoryService *service.InventoryService) *InventoriesHandler {
	return &InventoriesHandler{service: inventoryService}
}

// List GET /inventories.
func (h *InventoriesHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	filter := repository.InventoryFilter{
		CustomerID: c.QueryInt("customerId"),
		Status:     domain.InventoryStatus(c.Query("status")),
	}
	sessions, err := h.service.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessions})
}

// Get GET /inventories/:id.
func (h *InventoriesHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	session, err := h.service.Get(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session})
}

// Create POST /inventories.
func (h *InventoriesHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	session, err := h.service.Create(c.UserContext(), actor, service.InventoryCreateInput{
		Name:          req.Name,
		Type:          req.Type,
		CustomerID:    req.CustomerID,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": session})
}

// Update PUT /inventories/:id.
func (h *InventoriesHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	session, err := h.service.Update(c.UserContext(), actor, id, service.InventoryUpdateInput{
		Name:            req.Name,
		Type:            req.Type,
		Status:          req.Status,
		ScheduledDate:   req.ScheduledDate,
		CheckedDevices:  req.CheckedDevices,
		NormalDevices:   req.NormalDevices,
		AbnormalDevices: req.AbnormalDevices,
		MissingDevices:  req.MissingDevices,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session})
}

// Delete DELETE /inventories/:id.
func (h *InventoriesHandler) Delete(c *fiber.Ctx) error {
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

// Progress GET /inventories/progress.
func (h *InventoriesHandler) Progress(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	progress, err := h.service.Progress(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": progress})
}

// Statistics GET /inventories/statistics.
func (h *InventoriesHandler) Statistics(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Statistics(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
