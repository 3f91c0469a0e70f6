package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/events"
	"github.com/qztech/asset-console/internal/repository"
)

func newInventoryFixture(t *testing.T) (*InventoryService, time.Time) {
	t.Helper()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore()
	store.Seed(now)
	svc := NewInventoryService(store.Inventories(), store.Customers(), store.Devices(), events.NewInMemoryDispatcher(nil))
	return svc, now
}

func TestCreateCountsCustomerDevices(t *testing.T) {
	svc, now := newInventoryFixture(t)
	scheduled := now.AddDate(0, 0, 14)

	session, err := svc.Create(context.Background(), admin(), InventoryCreateInput{
		Name:          "群兆下半年盤點",
		Type:          "semiannual",
		CustomerID:    1,
		ScheduledDate: &scheduled,
	})
	require.NoError(t, err)
	require.Equal(t, "群兆科技股份有限公司", session.CustomerName)
	require.Equal(t, 3, session.TotalDevices)
	require.Equal(t, domain.InventoryStatusScheduled, session.Status)
}

func TestUpdateClampsCounts(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	ctx := context.Background()

	checked := 99
	normal := 1
	session, err := svc.Update(ctx, admin(), 2, InventoryUpdateInput{
		CheckedDevices: &checked,
		NormalDevices:  &normal,
	})
	require.NoError(t, err)
	require.Equal(t, session.TotalDevices, session.CheckedDevices)
	require.Equal(t, 1, session.NormalDevices)
}

func TestUpdateRejectsInconsistentBreakdown(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	checked := 4
	normal := 3
	abnormal := 2
	_, err := svc.Update(context.Background(), admin(), 1, InventoryUpdateInput{
		CheckedDevices:  &checked,
		NormalDevices:   &normal,
		AbnormalDevices: &abnormal,
	})
	require.Error(t, err)
}

func TestProgressGuardsZeroTotal(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	ctx := context.Background()

	empty, err := svc.Create(ctx, admin(), InventoryCreateInput{
		Name:       "空客戶盤點",
		CustomerID: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 1, empty.TotalDevices)

	progress, err := svc.Progress(ctx, admin())
	require.NoError(t, err)
	require.Len(t, progress, 4)
	for _, p := range progress {
		require.GreaterOrEqual(t, p.ProgressPercentage, 0)
		require.LessOrEqual(t, p.ProgressPercentage, 100)
	}
}

func TestStatisticsAggregatesByCustomerAndMonth(t *testing.T) {
	svc, now := newInventoryFixture(t)

	stats, err := svc.Statistics(context.Background(), admin())
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.ByStatus[domain.InventoryStatusCompleted])
	require.Equal(t, 1, stats.ByStatus[domain.InventoryStatusInProgress])
	require.Equal(t, 1, stats.ByStatus[domain.InventoryStatusScheduled])
	require.Equal(t, 0, stats.ByStatus[domain.InventoryStatusCancelled])

	qz := stats.ByCustomer["群兆科技股份有限公司"]
	require.Equal(t, 1, qz.Count)
	require.Equal(t, 1, qz.CompletedCount)
	require.Equal(t, 4, qz.TotalDevices)
	require.Equal(t, 4, qz.CheckedDevices)
	require.Equal(t, 3, qz.NormalDevices)
	require.Equal(t, 1, qz.AbnormalDevices)

	// Sessions 1 and 2 are 30 and 3 days back, landing in the same month.
	lastMonth := now.AddDate(0, 0, -30).Format("2006-01")
	require.Equal(t, 2, stats.ByMonth[lastMonth].Count)
	thisMonth := now.AddDate(0, 0, 7).Format("2006-01")
	require.Equal(t, 1, stats.ByMonth[thisMonth].Count)
}

func TestInventoryCustomerScoping(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	ctx := context.Background()

	sessions, err := svc.List(ctx, customerUser(2), repository.InventoryFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, 2, sessions[0].CustomerID)

	_, err = svc.Get(ctx, customerUser(2), 1)
	require.Error(t, err)

	_, err = svc.Create(ctx, customerUser(2), InventoryCreateInput{Name: "x", CustomerID: 2})
	require.Error(t, err)
}
