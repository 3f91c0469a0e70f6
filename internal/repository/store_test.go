package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/domain"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	store.Seed(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	return store
}

func TestCopyOnRead(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	devices, err := store.Devices().List(ctx, DeviceFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, devices)

	// Mutating a listed record must not leak into the store.
	devices[0].Name = "tampered"
	*devices[0].WarrantyExpiry = time.Time{}

	fresh, err := store.Devices().GetByID(ctx, devices[0].ID)
	require.NoError(t, err)
	require.NotEqual(t, "tampered", fresh.Name)
	require.False(t, fresh.WarrantyExpiry.IsZero())
}

func TestTicketCopyOnRead(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	ticket, err := store.Tickets().GetByID(ctx, "TK-2024-001")
	require.NoError(t, err)
	ticket.History = append(ticket.History, domain.TicketHistoryEntry{Status: domain.TicketStatusClosed})

	fresh, err := store.Tickets().GetByID(ctx, "TK-2024-001")
	require.NoError(t, err)
	require.Len(t, fresh.History, 1)
}

func TestTicketCreateAppliesDeltasAtomically(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	tech, err := store.Technicians().GetByName(ctx, "李工程師")
	require.NoError(t, err)
	baseline := tech.Workload

	ticket := &domain.Ticket{
		Title:      "印表機卡紙",
		Status:     domain.TicketStatusOpen,
		CustomerID: 4,
		AssignedTo: "李工程師",
		CreatedAt:  time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}
	deltas := domain.WorkloadDeltas(nil, ticket)
	require.NoError(t, store.Tickets().Create(ctx, ticket, deltas))
	require.NotEmpty(t, ticket.ID)

	tech, err = store.Technicians().GetByName(ctx, "李工程師")
	require.NoError(t, err)
	require.Equal(t, baseline+1, tech.Workload)
}

func TestWorkloadNeverNegative(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	tech, err := store.Technicians().GetByName(ctx, "王技術員")
	require.NoError(t, err)
	require.Equal(t, 0, tech.Workload)

	store.mu.Lock()
	store.applyWorkloadDeltas([]domain.WorkloadDelta{{TechnicianName: "王技術員", Delta: -1}})
	store.mu.Unlock()

	tech, err = store.Technicians().GetByName(ctx, "王技術員")
	require.NoError(t, err)
	require.Equal(t, 0, tech.Workload)
}

func TestUnknownTechnicianDeltaIsNoop(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	ticket := &domain.Ticket{
		Title:      "無人認領",
		Status:     domain.TicketStatusOpen,
		CustomerID: 1,
		AssignedTo: "不存在的工程師",
		CreatedAt:  time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Tickets().Create(ctx, ticket, domain.WorkloadDeltas(nil, ticket)))

	techs, err := store.Technicians().List(ctx)
	require.NoError(t, err)
	for _, tech := range techs {
		require.GreaterOrEqual(t, tech.Workload, 0)
	}
}

func TestTechnicianUpdateCannotTouchWorkload(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	tech, err := store.Technicians().GetByID(ctx, 1)
	require.NoError(t, err)
	baseline := tech.Workload

	tech.Speciality = "network"
	tech.Workload = 99
	require.NoError(t, store.Technicians().Update(ctx, tech))

	fresh, err := store.Technicians().GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "network", fresh.Speciality)
	require.Equal(t, baseline, fresh.Workload)
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	require.ErrorIs(t, store.Customers().Delete(ctx, 99), ErrNotFound)
	require.ErrorIs(t, store.Devices().Delete(ctx, 99), ErrNotFound)
	require.ErrorIs(t, store.Tickets().Delete(ctx, "TK-1999-999", nil), ErrNotFound)
}

func TestTicketIDGeneration(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	ticket := &domain.Ticket{
		Title:      "網路緩慢",
		Status:     domain.TicketStatusOpen,
		CustomerID: 2,
		CreatedAt:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Tickets().Create(ctx, ticket, nil))
	require.Equal(t, "TK-2024-002", ticket.ID)
}
