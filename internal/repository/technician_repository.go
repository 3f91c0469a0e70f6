package repository

import (
	"context"

	"github.com/qztech/asset-console/internal/domain"
)

// TechnicianRepository encapsulates technician persistence. Workload is
// adjusted only through ticket writes, never directly.
type TechnicianRepository interface {
	Create(ctx context.Context, technician *domain.Technician) error
	Update(ctx context.Context, technician *domain.Technician) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Technician, error)
	GetByName(ctx context.Context, name string) (*domain.Technician, error)
	List(ctx context.Context) ([]domain.Technician, error)
}

type technicianRepository struct {
	store *MemoryStore
}

func (r *technicianRepository) Create(_ context.Context, technician *domain.Technician) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	technician.ID = s.nextTechnicianID
	s.nextTechnicianID++
	s.technicians = append(s.technicians, *technician)
	return nil
}

func (r *technicianRepository) Update(_ context.Context, technician *domain.Technician) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.technicians {
		if s.technicians[i].ID == technician.ID {
			// Workload stays under the store's control.
			technician.Workload = s.technicians[i].Workload
			s.technicians[i] = *technician
			return nil
		}
	}
	return ErrNotFound
}

func (r *technicianRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.technicians {
		if s.technicians[i].ID == id {
			s.technicians = append(s.technicians[:i], s.technicians[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *technicianRepository) GetByID(_ context.Context, id int) (*domain.Technician, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.technicians {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *technicianRepository) GetByName(_ context.Context, name string) (*domain.Technician, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.technicians {
		if t.Name == name {
			out := t
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *technicianRepository) List(_ context.Context) ([]domain.Technician, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Technician, len(s.technicians))
	copy(out, s.technicians)
	return out, nil
}
