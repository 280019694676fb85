package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// InventoryReportGenerator produce el informe de existencias en PDF.
// La implementación Maroto vive en infrastructure/pdf.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, data *entity.WineryData, generatedAt time.Time) ([]byte, error)
}

// ReportHandler sirve informes descargables.
type ReportHandler struct {
	uc  *inventory.UseCase
	gen InventoryReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.UseCase, gen InventoryReportGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, gen: gen}
}

// InventoryPDF godoc
// @Summary      Informe de existencias en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	now := time.Now()
	pdfBytes, err := h.gen.GenerateInventoryReport(c.Context(), h.uc.Snapshot(), now)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="existencias_`+now.Format("2006-01-02")+`.pdf"`)
	return c.Send(pdfBytes)
}
