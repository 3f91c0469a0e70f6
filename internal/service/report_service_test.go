package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/repository"
)

func newReportFixture(t *testing.T) *ReportService {
	t.Helper()
	store := repository.NewMemoryStore()
	store.Seed(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	return NewReportService(store.Devices(), store.Tickets())
}

func TestDeviceReportScopesToCustomer(t *testing.T) {
	svc := newReportFixture(t)
	ctx := context.Background()

	all, err := svc.Build(ctx, admin(), ReportDevices, ReportQuery{})
	require.NoError(t, err)
	require.Len(t, all.Rows, 6)

	scoped, err := svc.Build(ctx, customerUser(1), ReportDevices, ReportQuery{})
	require.NoError(t, err)
	require.Len(t, scoped.Rows, 3)
}

func TestReportSelectionOrAll(t *testing.T) {
	svc := newReportFixture(t)
	ctx := context.Background()

	selected, err := svc.Build(ctx, admin(), ReportDevices, ReportQuery{SelectedIDs: []string{"3", "1"}})
	require.NoError(t, err)
	require.Len(t, selected.Rows, 2)
	// Selection keeps the original relative order, not the request order.
	require.Equal(t, 1, selected.Rows[0][0])
	require.Equal(t, 3, selected.Rows[1][0])
}

func TestReportSearchFiltersRows(t *testing.T) {
	svc := newReportFixture(t)

	found, err := svc.Build(context.Background(), admin(), ReportDevices, ReportQuery{Search: "synology"})
	require.NoError(t, err)
	require.Len(t, found.Rows, 1)
	require.Equal(t, "備份儲存設備", found.Rows[0][1])
}

func TestWarrantyReportAnnotates(t *testing.T) {
	svc := newReportFixture(t)

	projection, err := svc.Build(context.Background(), admin(), ReportWarranty, ReportQuery{})
	require.NoError(t, err)
	require.Len(t, projection.Rows, 6)

	// Sorted most urgent first; the expired device leads and the dateless
	// one trails with blank cells instead of nils.
	first := projection.Rows[0]
	require.Equal(t, "expired", first[5])
	last := projection.Rows[len(projection.Rows)-1]
	require.Equal(t, "unknown", last[5])
	require.Equal(t, "", last[4])
	require.Equal(t, "", last[6])
}

func TestExportCSV(t *testing.T) {
	svc := newReportFixture(t)

	export, err := svc.BuildExport(context.Background(), admin(), ReportTickets, FormatCSV, ReportQuery{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(export.FileName, "tickets-report-"))
	require.Contains(t, export.ContentType, "text/csv")

	text := string(export.Data)
	require.Contains(t, text, "工單編號")
	require.Contains(t, text, "TK-2024-001")
}

func TestExportXLSXMagic(t *testing.T) {
	svc := newReportFixture(t)

	export, err := svc.BuildExport(context.Background(), admin(), ReportDevices, FormatXLSX, ReportQuery{})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(export.FileName, ".xlsx"))
	require.GreaterOrEqual(t, len(export.Data), 2)
	require.Equal(t, "PK", string(export.Data[:2]))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc := newReportFixture(t)

	_, err := svc.BuildExport(context.Background(), admin(), ReportDevices, ExportFormat("pdf"), ReportQuery{})
	require.Error(t, err)
}
