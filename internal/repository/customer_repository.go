package repository

import (
	"context"

	"github.com/qztech/asset-console/internal/domain"
)

// CustomerRepository encapsulates customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerRepository struct {
	store *MemoryStore
}

func (r *customerRepository) Create(_ context.Context, customer *domain.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customer.ID = s.nextCustomerID
	s.nextCustomerID++
	if customer.Status == "" {
		customer.Status = domain.CustomerStatusActive
	}
	s.customers = append(s.customers, *customer)
	return nil
}

func (r *customerRepository) Update(_ context.Context, customer *domain.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i] = *customer
			return nil
		}
	}
	return ErrNotFound
}

func (r *customerRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *customerRepository) GetByID(_ context.Context, id int) (*domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *customerRepository) List(_ context.Context) ([]domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}
