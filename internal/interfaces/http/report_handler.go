package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/reports"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales reporte de ventas y comisiones del período.
// GET /api/reports/sales?start_date=2025-01-01&end_date=2025-01-31
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	report, err := h.uc.SalesCommissions(c.Context(), GetBranchID(c),
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(report)
}

// SalesCSV exporta el reporte de ventas y comisiones en CSV.
// GET /api/reports/sales/export.csv?start_date=&end_date=
func (h *ReportHandler) SalesCSV(c *fiber.Ctx) error {
	report, err := h.uc.SalesCommissions(c.Context(), GetBranchID(c),
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return reportError(c, err)
	}
	data, filename, err := reports.SalesCommissionsCSV(report)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Collections reporte de cobranza de un inspector agrupado por mes.
// GET /api/reports/collections?inspector_id=&start_date=&end_date=
func (h *ReportHandler) Collections(c *fiber.Ctx) error {
	inspectorID := c.Query("inspector_id")
	if inspectorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inspector_id es requerido"})
	}
	report, err := h.uc.MonthlyCollections(c.Context(), GetBranchID(c), inspectorID,
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(report)
}

// InspectorContracts contratos verificados por un inspector, sin duplicados.
// GET /api/reports/inspectors/:id/contracts
func (h *ReportHandler) InspectorContracts(c *fiber.Ctx) error {
	report, err := h.uc.InspectorContracts(GetBranchID(c), c.Params("id"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(report)
}

func reportError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (formato 2006-01-02)"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inspector no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
