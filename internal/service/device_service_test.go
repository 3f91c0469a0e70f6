package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
)

func newDeviceFixture(t *testing.T) (*DeviceService, time.Time) {
	t.Helper()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore()
	store.Seed(now)
	return NewDeviceService(store.Devices(), store.Customers()), now
}

func TestDeviceListCustomerScoped(t *testing.T) {
	svc, _ := newDeviceFixture(t)
	ctx := context.Background()

	all, err := svc.List(ctx, admin(), repository.DeviceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 6)

	scoped, err := svc.List(ctx, customerUser(1), repository.DeviceFilter{})
	require.NoError(t, err)
	require.Len(t, scoped, 3)
	for _, d := range scoped {
		require.Equal(t, 1, d.CustomerID)
	}
}

func TestDeviceCreateDenormalizesCustomerName(t *testing.T) {
	svc, _ := newDeviceFixture(t)

	device, err := svc.Create(context.Background(), admin(), DeviceInput{
		Name:       "防火牆-01",
		Type:       domain.DeviceTypeSecurity,
		CustomerID: 2,
		Status:     domain.DeviceStatusActive,
	})
	require.NoError(t, err)
	require.Equal(t, "創新軟體有限公司", device.CustomerName)
	require.NotZero(t, device.ID)
}

func TestDeviceUpdateRefreshesOwnership(t *testing.T) {
	svc, _ := newDeviceFixture(t)

	device, err := svc.Update(context.Background(), admin(), 6, DeviceInput{CustomerID: 1})
	require.NoError(t, err)
	require.Equal(t, 1, device.CustomerID)
	require.Equal(t, "群兆科技股份有限公司", device.CustomerName)
}

func TestDeviceMutationsForbiddenForCustomers(t *testing.T) {
	svc, _ := newDeviceFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, customerUser(1), DeviceInput{Name: "x"})
	require.Error(t, err)
	_, err = svc.Update(ctx, customerUser(1), 1, DeviceInput{Name: "x"})
	require.Error(t, err)
	require.Error(t, svc.Delete(ctx, customerUser(1), 1))
}

func TestWarrantyOverviewBuckets(t *testing.T) {
	svc, now := newDeviceFixture(t)

	overview, err := svc.WarrantyOverview(context.Background(), admin(), now)
	require.NoError(t, err)
	require.Len(t, overview.Devices, 6)

	// Seed offsets: -10, +3, +20, +75, +400 days and one dateless device.
	require.Equal(t, 1, overview.Counts[status.TagExpired])
	require.Equal(t, 2, overview.Counts[status.TagExpiringSoon])
	require.Equal(t, 1, overview.Counts[status.TagExpiring3Month])
	require.Equal(t, 1, overview.Counts[status.TagActive])
	require.Equal(t, 1, overview.Counts[status.TagUnknown])

	// Most urgent first, dateless last.
	require.Equal(t, status.TagExpired, overview.Devices[0].Tag)
	require.Equal(t, status.TagUnknown, overview.Devices[5].Tag)
}

func TestWarrantyOverviewCustomerScoped(t *testing.T) {
	svc, now := newDeviceFixture(t)

	overview, err := svc.WarrantyOverview(context.Background(), customerUser(3), now)
	require.NoError(t, err)
	require.Len(t, overview.Devices, 1)
	require.Equal(t, status.TagExpiringSoon, overview.Devices[0].Tag)
}
