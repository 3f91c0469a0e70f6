// Package repository holds the volatile in-memory datastore. Every read
// returns copies so callers never hold a live reference into the store, and
// all writes go through one lock so the ticket/workload coupling can be
// applied atomically.
package repository

import (
	"errors"
	"sync"

	"github.com/qztech/asset-console/internal/domain"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// MemoryStore owns all entity collections. Data lives only for the process
// lifetime.
type MemoryStore struct {
	mu sync.RWMutex

	customers    []domain.Customer
	devices      []domain.Device
	tickets      []domain.Ticket
	technicians  []domain.Technician
	maintenances []domain.MaintenanceSchedule
	inventories  []domain.InventorySession

	nextCustomerID    int
	nextDeviceID      int
	nextTechnicianID  int
	nextMaintenanceID int
	nextInventoryID   int
	ticketSeq         int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextCustomerID:    1,
		nextDeviceID:      1,
		nextTechnicianID:  1,
		nextMaintenanceID: 1,
		nextInventoryID:   1,
	}
}

// Customers returns the customer repository view of the store.
func (s *MemoryStore) Customers() CustomerRepository { return &customerRepository{store: s} }

// Devices returns the device repository view of the store.
func (s *MemoryStore) Devices() DeviceRepository { return &deviceRepository{store: s} }

// Tickets returns the ticket repository view of the store.
func (s *MemoryStore) Tickets() TicketRepository { return &ticketRepository{store: s} }

// Technicians returns the technician repository view of the store.
func (s *MemoryStore) Technicians() TechnicianRepository { return &technicianRepository{store: s} }

// Maintenances returns the maintenance schedule repository view.
func (s *MemoryStore) Maintenances() MaintenanceRepository { return &maintenanceRepository{store: s} }

// Inventories returns the inventory session repository view.
func (s *MemoryStore) Inventories() InventoryRepository { return &inventoryRepository{store: s} }

func copyTicket(t domain.Ticket) domain.Ticket {
	out := t
	if t.DeviceID != nil {
		id := *t.DeviceID
		out.DeviceID = &id
	}
	out.Comments = append([]domain.TicketComment(nil), t.Comments...)
	out.History = append([]domain.TicketHistoryEntry(nil), t.History...)
	return out
}

func copyDevice(d domain.Device) domain.Device {
	out := d
	if d.WarrantyExpiry != nil {
		exp := *d.WarrantyExpiry
		out.WarrantyExpiry = &exp
	}
	return out
}

func copyMaintenance(m domain.MaintenanceSchedule) domain.MaintenanceSchedule {
	out := m
	if m.LastMaintenance != nil {
		v := *m.LastMaintenance
		out.LastMaintenance = &v
	}
	if m.NextMaintenance != nil {
		v := *m.NextMaintenance
		out.NextMaintenance = &v
	}
	return out
}

func copyInventory(s domain.InventorySession) domain.InventorySession {
	out := s
	if s.ScheduledDate != nil {
		v := *s.ScheduledDate
		out.ScheduledDate = &v
	}
	return out
}

// applyWorkloadDeltas adjusts technician workloads in place. Must be called
// with the write lock held. Unknown technician names are silent no-ops and
// workload never drops below zero.
func (s *MemoryStore) applyWorkloadDeltas(deltas []domain.WorkloadDelta) {
	for _, d := range deltas {
		for i := range s.technicians {
			if s.technicians[i].Name == d.TechnicianName {
				load := s.technicians[i].Workload + d.Delta
				if load < 0 {
					load = 0
				}
				s.technicians[i].Workload = load
				break
			}
		}
	}
}
