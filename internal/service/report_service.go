package service

import (
	"context"
	"fmt"
	"time"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/report"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// ReportService builds tabular report projections and their file exports.
type ReportService struct {
	devices repository.DeviceRepository
	tickets repository.TicketRepository
}

// NewReportService constructs the service.
func NewReportService(devices repository.DeviceRepository, tickets repository.TicketRepository) *ReportService {
	return &ReportService{devices: devices, tickets: tickets}
}

// ReportKind selects a report definition.
type ReportKind string

const (
	ReportDevices  ReportKind = "devices"
	ReportTickets  ReportKind = "tickets"
	ReportWarranty ReportKind = "warranty"
)

// ExportFormat selects the export encoding.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ReportQuery carries search and selection parameters.
type ReportQuery struct {
	Search      string
	SelectedIDs []string
}

// Export bundles the encoded bytes with delivery metadata.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

const dateLayout = "2006-01-02"

var reportSearchFields = map[ReportKind][]string{
	ReportDevices:  {"name", "model", "serialNumber", "customerName"},
	ReportTickets:  {"id", "title", "customerName", "assignedTo"},
	ReportWarranty: {"name", "model", "customerName"},
}

// Build produces the named report for the actor, scoped, searched and
// optionally narrowed to a selection.
func (s *ReportService) Build(ctx context.Context, actor domain.User, kind ReportKind, query ReportQuery) (*report.Projection, error) {
	rows, cols, err := s.rows(ctx, kind)
	if err != nil {
		return nil, err
	}

	if fields, ok := reportSearchFields[kind]; ok && query.Search != "" {
		kept := make([]report.Row, 0, len(rows))
		for _, row := range rows {
			if report.MatchesSearch(row, query.Search, fields) {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	projection := report.Project(rows, cols, report.Scope{
		Role:       actor.Role,
		CustomerID: actor.CustomerID,
	}, query.SelectedIDs)
	return &projection, nil
}

// BuildExport encodes the report in the requested format.
func (s *ReportService) BuildExport(ctx context.Context, actor domain.User, kind ReportKind, format ExportFormat, query ReportQuery) (*Export, error) {
	projection, err := s.Build(ctx, actor, kind, query)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102")
	switch format {
	case FormatCSV:
		data, err := report.EncodeCSV(*projection)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		return &Export{
			FileName:    fmt.Sprintf("%s-report-%s.csv", kind, stamp),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	case FormatXLSX:
		data, err := report.EncodeXLSX(*projection, string(kind))
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		return &Export{
			FileName:    fmt.Sprintf("%s-report-%s.xlsx", kind, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, apperrors.NewValidationError("unsupported export format", map[string]any{"format": string(format)})
	}
}

func (s *ReportService) rows(ctx context.Context, kind ReportKind) ([]report.Row, []report.Column, error) {
	switch kind {
	case ReportDevices:
		return s.deviceRows(ctx)
	case ReportTickets:
		return s.ticketRows(ctx)
	case ReportWarranty:
		return s.warrantyRows(ctx)
	default:
		return nil, nil, apperrors.NewValidationError("unknown report", map[string]any{"report": string(kind)})
	}
}

func (s *ReportService) deviceRows(ctx context.Context) ([]report.Row, []report.Column, error) {
	devices, err := s.devices.List(ctx, repository.DeviceFilter{})
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	rows := make([]report.Row, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, deviceRow(d))
	}
	cols := []report.Column{
		{Field: "id", Header: "編號"},
		{Field: "name", Header: "設備名稱"},
		{Field: "type", Header: "類型"},
		{Field: "model", Header: "型號"},
		{Field: "serialNumber", Header: "序號"},
		{Field: "customerName", Header: "客戶"},
		{Field: "status", Header: "狀態"},
		{Field: "warrantyExpiry", Header: "保固到期日", Transform: formatDateCell},
	}
	return rows, cols, nil
}

func (s *ReportService) ticketRows(ctx context.Context) ([]report.Row, []report.Column, error) {
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{})
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	rows := make([]report.Row, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, report.Row{
			"id":           t.ID,
			"title":        t.Title,
			"category":     string(t.Category),
			"priority":     string(t.Priority),
			"status":       string(t.Status),
			"customerId":   t.CustomerID,
			"customerName": t.CustomerName,
			"assignedTo":   t.AssignedTo,
			"createdAt":    t.CreatedAt,
		})
	}
	cols := []report.Column{
		{Field: "id", Header: "工單編號"},
		{Field: "title", Header: "標題"},
		{Field: "category", Header: "分類"},
		{Field: "priority", Header: "優先級"},
		{Field: "status", Header: "狀態"},
		{Field: "customerName", Header: "客戶"},
		{Field: "assignedTo", Header: "負責技術員"},
		{Field: "createdAt", Header: "建立日期", Transform: formatDateCell},
	}
	return rows, cols, nil
}

func (s *ReportService) warrantyRows(ctx context.Context) ([]report.Row, []report.Column, error) {
	devices, err := s.devices.List(ctx, repository.DeviceFilter{})
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	annotated := status.Annotate(devices, func(d domain.Device) *time.Time {
		return d.WarrantyExpiry
	}, status.Warranty, time.Now())
	status.SortByDaysRemaining(annotated)

	rows := make([]report.Row, 0, len(annotated))
	for _, a := range annotated {
		row := deviceRow(a.Entity)
		row["warrantyStatus"] = string(a.Tag)
		if a.DaysRemaining != nil {
			row["daysRemaining"] = *a.DaysRemaining
		}
		rows = append(rows, row)
	}
	cols := []report.Column{
		{Field: "id", Header: "編號"},
		{Field: "name", Header: "設備名稱"},
		{Field: "model", Header: "型號"},
		{Field: "customerName", Header: "客戶"},
		{Field: "warrantyExpiry", Header: "保固到期日", Transform: formatDateCell},
		{Field: "warrantyStatus", Header: "保固狀態"},
		{Field: "daysRemaining", Header: "剩餘天數"},
	}
	return rows, cols, nil
}

func deviceRow(d domain.Device) report.Row {
	row := report.Row{
		"id":           d.ID,
		"name":         d.Name,
		"type":         string(d.Type),
		"model":        d.Model,
		"serialNumber": d.SerialNumber,
		"customerId":   d.CustomerID,
		"customerName": d.CustomerName,
		"status":       string(d.Status),
	}
	if d.WarrantyExpiry != nil {
		row["warrantyExpiry"] = *d.WarrantyExpiry
	}
	return row
}

func formatDateCell(value any, _ report.Row) any {
	switch v := value.(type) {
	case time.Time:
		return v.Format(dateLayout)
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.Format(dateLayout)
	default:
		return value
	}
}
