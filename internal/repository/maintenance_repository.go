package repository

import (
	"context"

	"github.com/qztech/asset-console/internal/domain"
)

// MaintenanceFilter captures schedule listing parameters.
type MaintenanceFilter struct {
	DeviceID  int
	Frequency domain.MaintenanceFrequency
	Status    domain.MaintenanceScheduleStatus
}

// MaintenanceRepository encapsulates maintenance schedule persistence.
type MaintenanceRepository interface {
	Create(ctx context.Context, schedule *domain.MaintenanceSchedule) error
	Update(ctx context.Context, schedule *domain.MaintenanceSchedule) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.MaintenanceSchedule, error)
	List(ctx context.Context, filter MaintenanceFilter) ([]domain.MaintenanceSchedule, error)
}

type maintenanceRepository struct {
	store *MemoryStore
}

func (r *maintenanceRepository) Create(_ context.Context, schedule *domain.MaintenanceSchedule) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule.ID = s.nextMaintenanceID
	s.nextMaintenanceID++
	if schedule.Status == "" {
		schedule.Status = domain.MaintenanceStatusScheduled
	}
	s.maintenances = append(s.maintenances, copyMaintenance(*schedule))
	return nil
}

func (r *maintenanceRepository) Update(_ context.Context, schedule *domain.MaintenanceSchedule) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.maintenances {
		if s.maintenances[i].ID == schedule.ID {
			s.maintenances[i] = copyMaintenance(*schedule)
			return nil
		}
	}
	return ErrNotFound
}

func (r *maintenanceRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.maintenances {
		if s.maintenances[i].ID == id {
			s.maintenances = append(s.maintenances[:i], s.maintenances[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *maintenanceRepository) GetByID(_ context.Context, id int) (*domain.MaintenanceSchedule, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.maintenances {
		if m.ID == id {
			out := copyMaintenance(m)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *maintenanceRepository) List(_ context.Context, filter MaintenanceFilter) ([]domain.MaintenanceSchedule, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MaintenanceSchedule, 0, len(s.maintenances))
	for _, m := range s.maintenances {
		if filter.DeviceID != 0 && m.DeviceID != filter.DeviceID {
			continue
		}
		if filter.Frequency != "" && m.Frequency != filter.Frequency {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		out = append(out, copyMaintenance(m))
	}
	return out, nil
}
