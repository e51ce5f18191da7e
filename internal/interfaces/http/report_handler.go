package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/report"
)

// ReportHandler sirve el informe de existencias en PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockReport godoc
// @Summary      Informe de existencias (PDF)
// @Description  Stock bajo, lotes vencidos y por vencer.
// @Tags         stock
// @Security     BasicAuth
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /stock/report [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Generate(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
