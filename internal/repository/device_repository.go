package repository

import (
	"context"

	"github.com/qztech/asset-console/internal/domain"
)

// DeviceFilter captures device listing parameters. CustomerID of 0 means
// all customers.
type DeviceFilter struct {
	CustomerID int
	Type       domain.DeviceType
	Status     domain.DeviceStatus
}

// DeviceRepository encapsulates device persistence.
type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Device, error)
	List(ctx context.Context, filter DeviceFilter) ([]domain.Device, error)
}

type deviceRepository struct {
	store *MemoryStore
}

func (r *deviceRepository) Create(_ context.Context, device *domain.Device) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	device.ID = s.nextDeviceID
	s.nextDeviceID++
	if device.Status == "" {
		device.Status = domain.DeviceStatusActive
	}
	s.devices = append(s.devices, copyDevice(*device))
	return nil
}

func (r *deviceRepository) Update(_ context.Context, device *domain.Device) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.devices {
		if s.devices[i].ID == device.ID {
			s.devices[i] = copyDevice(*device)
			return nil
		}
	}
	return ErrNotFound
}

func (r *deviceRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.devices {
		if s.devices[i].ID == id {
			s.devices = append(s.devices[:i], s.devices[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *deviceRepository) GetByID(_ context.Context, id int) (*domain.Device, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.devices {
		if d.ID == id {
			out := copyDevice(d)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *deviceRepository) List(_ context.Context, filter DeviceFilter) ([]domain.Device, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Device, 0, len(s.devices))
	for _, d := range s.devices {
		if filter.CustomerID != 0 && d.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		out = append(out, copyDevice(d))
	}
	return out, nil
}
