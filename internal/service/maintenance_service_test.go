package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/events"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
)

func newMaintenanceFixture(t *testing.T) (*MaintenanceService, time.Time) {
	t.Helper()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore()
	store.Seed(now)
	svc := NewMaintenanceService(store.Maintenances(), store.Devices(), events.NewInMemoryDispatcher(nil))
	return svc, now
}

func TestExecuteAdvancesCountersAndReschedules(t *testing.T) {
	svc, now := newMaintenanceFixture(t)
	ctx := context.Background()

	// Schedule 2 is monthly and overdue.
	before, err := svc.Get(ctx, admin(), 2)
	require.NoError(t, err)

	executedAt := now.AddDate(0, 0, 1)
	after, err := svc.Execute(ctx, admin(), 2, executedAt)
	require.NoError(t, err)

	require.Equal(t, before.CompletedMaintenances+1, after.CompletedMaintenances)
	require.Equal(t, before.TotalMaintenances+1, after.TotalMaintenances)
	require.NotNil(t, after.LastMaintenance)
	require.True(t, after.LastMaintenance.Equal(executedAt))
	require.NotNil(t, after.NextMaintenance)
	require.True(t, after.NextMaintenance.Equal(executedAt.AddDate(0, 1, 0)))
}

func TestExecuteCustomFrequencyUsesCustomDays(t *testing.T) {
	svc, now := newMaintenanceFixture(t)
	ctx := context.Background()

	// Schedule 3 is custom with a 45 day interval.
	after, err := svc.Execute(ctx, admin(), 3, now)
	require.NoError(t, err)
	require.True(t, after.NextMaintenance.Equal(now.AddDate(0, 0, 45)))
}

func TestDueViewClassifiesAndOrders(t *testing.T) {
	svc, now := newMaintenanceFixture(t)

	overview, err := svc.DueView(context.Background(), admin(), now)
	require.NoError(t, err)
	require.Len(t, overview.Schedules, 3)

	// Seed: -5 days overdue, +2 days due, +20 days scheduled.
	require.Equal(t, status.TagOverdue, overview.Schedules[0].Tag)
	require.Equal(t, status.TagDue, overview.Schedules[1].Tag)
	require.Equal(t, status.TagScheduled, overview.Schedules[2].Tag)

	require.Equal(t, 1, overview.Counts[status.TagOverdue])
	require.Equal(t, 1, overview.Counts[status.TagDue])
	require.Equal(t, 0, overview.Counts[status.TagUpcoming])
	require.Equal(t, 1, overview.Counts[status.TagScheduled])
}

func TestMaintenanceHiddenFromCustomers(t *testing.T) {
	svc, _ := newMaintenanceFixture(t)
	ctx := context.Background()

	_, err := svc.List(ctx, customerUser(1), repository.MaintenanceFilter{})
	require.Error(t, err)
	_, err = svc.Get(ctx, customerUser(1), 1)
	require.Error(t, err)
}

func TestCreateDenormalizesDeviceFields(t *testing.T) {
	svc, _ := newMaintenanceFixture(t)

	schedule, err := svc.Create(context.Background(), admin(), MaintenanceInput{
		DeviceID:        3,
		MaintenanceType: "inspection",
		Frequency:       domain.FrequencyWeekly,
	})
	require.NoError(t, err)
	require.Equal(t, "核心路由器", schedule.DeviceName)
	require.Equal(t, domain.DeviceTypeNetwork, schedule.DeviceType)
	require.Equal(t, "創新軟體有限公司", schedule.CustomerName)
	require.True(t, schedule.Active)
	require.NotNil(t, schedule.NextMaintenance)
}
