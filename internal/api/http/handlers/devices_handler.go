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

// DevicesHandler manages device endpoints.
type DevicesHandler struct {
	service *service.DeviceService
}

// NewDevicesHandler constructs handler.
func NewDevicesHandler(deviceService *service.DeviceService) *DevicesHandler {
	return &DevicesHandler{service: deviceService}
}

// List GET /devices.
func (h *DevicesHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	filter := repository.DeviceFilter{
		CustomerID: c.QueryInt("customerId"),
		Type:       domain.DeviceType(c.Query("type")),
		Status:     domain.DeviceStatus(c.Query("status")),
	}
	devices, err := h.service.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": devices})
}

// Get GET /devices/:id.
func (h *DevicesHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	device, err := h.service.Get(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": device})
}

// Create POST /devices.
func (h *DevicesHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	device, err := h.service.Create(c.UserContext(), actor, deviceInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": device})
}

// Update PUT /devices/:id.
func (h *DevicesHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	device, err := h.service.Update(c.UserContext(), actor, id, deviceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": device})
}

// Delete DELETE /devices/:id.
func (h *DevicesHandler) Delete(c *fiber.Ctx) error {
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

// Warranty GET /devices/warranty.
func (h *DevicesHandler) Warranty(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	overview, err := h.service.WarrantyOverview(c.UserContext(), actor, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}

func deviceInput(req dto.DeviceRequest) service.DeviceInput {
	return service.DeviceInput{
		Name:           req.Name,
		Type:           req.Type,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		CustomerID:     req.CustomerID,
		Status:         req.Status,
		WarrantyExpiry: req.WarrantyExpiry,
	}
}
