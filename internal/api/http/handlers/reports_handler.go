package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/observability"
	"github.com/qztech/asset-console/internal/service"
)

// ReportsHandler serves report projections and their CSV/XLSX exports.
type ReportsHandler struct {
	service *service.ReportService
	metrics *observability.Metrics
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService, metrics *observability.Metrics) *ReportsHandler {
	return &ReportsHandler{service: reportService, metrics: metrics}
}

// Get GET /reports/:report.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	projection, err := h.service.Build(c.UserContext(), actor, service.ReportKind(c.Params("report")), reportQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projection})
}

// Export GET /reports/:report/export?format=csv|xlsx&ids=1,2,3.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	kind := service.ReportKind(c.Params("report"))
	format := service.ExportFormat(c.Query("format", string(service.FormatCSV)))

	export, err := h.service.BuildExport(c.UserContext(), actor, kind, format, reportQuery(c))
	if err != nil {
		return err
	}
	if h.metrics != nil {
		h.metrics.RecordExport(string(kind), string(format))
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	return c.Send(export.Data)
}

func reportQuery(c *fiber.Ctx) service.ReportQuery {
	query := service.ReportQuery{Search: c.Query("search")}
	if ids := c.Query("ids"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				query.SelectedIDs = append(query.SelectedIDs, id)
			}
		}
	}
	return query
}
