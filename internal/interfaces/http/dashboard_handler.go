package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/analytics"
	"github.com/SocketStudioec/ITAssetManager/internal/application/reports"
)

// DashboardHandler resumen de costos y vencimientos de la empresa, en JSON y
// en PDF. La autorización de tenant la aplica RequireCompanyAccess en la ruta.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	pdf       *reports.PDFUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, pdf *reports.PDFUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, pdf: pdf}
}

// Summary godoc
// @Summary      Resumen de costos, inventario y vencimientos
// @Tags         dashboard
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/{companyId}/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.Params("companyId"), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CostReportPDF godoc
// @Summary      Reporte de costos en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/{companyId}/report.pdf [get]
func (h *DashboardHandler) CostReportPDF(c *fiber.Ctx) error {
	data, err := h.pdf.GenerateCostReport(c.Params("companyId"), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reporte-costos.pdf"`)
	return c.Send(data)
}
