package service

import (
	"context"
	"strings"
	"time"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// DeviceService coordinates device CRUD and warranty classification.
type DeviceService struct {
	devices   repository.DeviceRepository
	customers repository.CustomerRepository
}

// NewDeviceService constructs the service.
func NewDeviceService(devices repository.DeviceRepository, customers repository.CustomerRepository) *DeviceService {
	return &DeviceService{devices: devices, customers: customers}
}

// DeviceInput describes create/update payloads. Pointer fields distinguish
// "leave unchanged" from explicit zero values on update.
type DeviceInput struct {
	Name           string
	Type           domain.DeviceType
	Model          string
	SerialNumber   string
	CustomerID     int
	Status         domain.DeviceStatus
	WarrantyExpiry *time.Time
}

// WarrantyOverview is the annotated, grouped warranty view of a device set.
type WarrantyOverview struct {
	Devices []status.Annotated[domain.Device]                `json:"devices"`
	Groups  map[status.Tag][]status.Annotated[domain.Device] `json:"groups"`
	Counts  map[status.Tag]int                               `json:"counts"`
}

// List returns devices visible to the actor, customer-scoped first.
func (s *DeviceService) List(ctx context.Context, actor domain.User, filter repository.DeviceFilter) ([]domain.Device, error) {
	if actor.Role == domain.RoleCustomer {
		filter.CustomerID = actor.CustomerID
	}
	devices, err := s.devices.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return devices, nil
}

// Get fetches a device, enforcing customer ownership.
func (s *DeviceService) Get(ctx context.Context, actor domain.User, id int) (*domain.Device, error) {
	device, err := s.devices.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role == domain.RoleCustomer && device.CustomerID != actor.CustomerID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return device, nil
}

// Create adds a device, denormalizing the owning customer's name.
func (s *DeviceService) Create(ctx context.Context, actor domain.User, input DeviceInput) (*domain.Device, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("customers cannot manage devices")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}

	device := &domain.Device{
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		Model:          input.Model,
		SerialNumber:   input.SerialNumber,
		CustomerID:     input.CustomerID,
		Status:         input.Status,
		WarrantyExpiry: input.WarrantyExpiry,
	}
	device.CustomerName = s.customerName(ctx, input.CustomerID)
	if err := s.devices.Create(ctx, device); err != nil {
		return nil, apperrors.MapError(err)
	}
	return device, nil
}

// Update modifies an existing device, refreshing the denormalized customer
// name when ownership changes.
func (s *DeviceService) Update(ctx context.Context, actor domain.User, id int, input DeviceInput) (*domain.Device, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("customers cannot manage devices")
	}
	device, err := s.devices.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if input.Name != "" {
		device.Name = strings.TrimSpace(input.Name)
	}
	if input.Type != "" {
		device.Type = input.Type
	}
	if input.Model != "" {
		device.Model = input.Model
	}
	if input.SerialNumber != "" {
		device.SerialNumber = input.SerialNumber
	}
	if input.Status != "" {
		device.Status = input.Status
	}
	if input.WarrantyExpiry != nil {
		device.WarrantyExpiry = input.WarrantyExpiry
	}
	if input.CustomerID != 0 && input.CustomerID != device.CustomerID {
		device.CustomerID = input.CustomerID
		device.CustomerName = s.customerName(ctx, input.CustomerID)
	}
	if err := s.devices.Update(ctx, device); err != nil {
		return nil, apperrors.MapError(err)
	}
	return device, nil
}

// Delete removes a device.
func (s *DeviceService) Delete(ctx context.Context, actor domain.User, id int) error {
	if actor.Role == domain.RoleCustomer {
		return apperrors.NewForbidden("customers cannot manage devices")
	}
	if err := s.devices.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// WarrantyOverview annotates the actor's visible devices against the
// warranty profile with one reference time for the whole batch, sorted by
// urgency.
func (s *DeviceService) WarrantyOverview(ctx context.Context, actor domain.User, reference time.Time) (*WarrantyOverview, error) {
	devices, err := s.List(ctx, actor, repository.DeviceFilter{})
	if err != nil {
		return nil, err
	}
	annotated := status.Annotate(devices, func(d domain.Device) *time.Time {
		return d.WarrantyExpiry
	}, status.Warranty, reference)
	status.SortByDaysRemaining(annotated)

	return &WarrantyOverview{
		Devices: annotated,
		Groups:  status.GroupByTag(annotated, status.Warranty),
		Counts:  status.CountByTag(annotated, status.Warranty),
	}, nil
}

func (s *DeviceService) customerName(ctx context.Context, customerID int) string {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return ""
	}
	return customer.Name
}
