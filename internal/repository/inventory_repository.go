package repository

import (
	"context"

	"github.com/qztech/asset-console/internal/domain"
)

// InventoryFilter captures session listing parameters.
type InventoryFilter struct {
	CustomerID int
	Status     domain.InventoryStatus
}

// InventoryRepository encapsulates inventory session persistence.
type InventoryRepository interface {
	Create(ctx context.Context, session *domain.InventorySession) error
	Update(ctx context.Context, session *domain.InventorySession) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.InventorySession, error)
	List(ctx context.Context, filter InventoryFilter) ([]domain.InventorySession, error)
}

type inventoryRepository struct {
	store *MemoryStore
}

func (r *inventoryRepository) Create(_ context.Context, session *domain.InventorySession) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = s.nextInventoryID
	s.nextInventoryID++
	if session.Status == "" {
		session.Status = domain.InventoryStatusScheduled
	}
	s.inventories = append(s.inventories, copyInventory(*session))
	return nil
}

func (r *inventoryRepository) Update(_ context.Context, session *domain.InventorySession) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inventories {
		if s.inventories[i].ID == session.ID {
			s.inventories[i] = copyInventory(*session)
			return nil
		}
	}
	return ErrNotFound
}

func (r *inventoryRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inventories {
		if s.inventories[i].ID == id {
			s.inventories = append(s.inventories[:i], s.inventories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *inventoryRepository) GetByID(_ context.Context, id int) (*domain.InventorySession, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.inventories {
		if inv.ID == id {
			out := copyInventory(inv)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *inventoryRepository) List(_ context.Context, filter InventoryFilter) ([]domain.InventorySession, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InventorySession, 0, len(s.inventories))
	for _, inv := range s.inventories {
		if filter.CustomerID != 0 && inv.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		out = append(out, copyInventory(inv))
	}
	return out, nil
}
