package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cartera-api/internal/application/dto"
	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/application/report"
	"github.com/jhoicas/Cartera-api/internal/domain"
)

// SummaryHandler reporte de totales y exportación a PDF (protegido).
type SummaryHandler struct {
	svc     *ledger.Service
	reports *report.UseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(svc *ledger.Service, reports *report.UseCase) *SummaryHandler {
	return &SummaryHandler{svc: svc, reports: reports}
}

// Get godoc
// @Summary      Resumen filtrado
// @Description  Créditos, pagos y neto filtrados por cliente (all = todos) y rango de fechas inclusivo.
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        customerId  query  string  false  "ID del cliente o all"
// @Param        startDate   query  string  false  "YYYY-MM-DD"
// @Param        endDate     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	q, err := summaryQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	s := h.svc.Summary(q)
	out := dto.SummaryResponse{
		CustomerID:   q.CustomerID,
		CustomerName: s.CustomerName,
		Credits:      s.Totals.Credits,
		Payments:     s.Totals.Payments,
		Net:          s.Totals.Net(),
		TotalDue:     s.TotalDue,
	}
	if q.Start != nil {
		out.StartDate = q.Start.String()
	}
	if q.End != nil {
		out.EndDate = q.End.String()
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Exportar resumen en PDF
// @Tags         summary
// @Security     Bearer
// @Produce      application/pdf
// @Param        customerId  query  string  false  "ID del cliente o all"
// @Param        startDate   query  string  false  "YYYY-MM-DD"
// @Param        endDate     query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/pdf [get]
func (h *SummaryHandler) PDF(c *fiber.Ctx) error {
	q, err := summaryQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	pdfBytes, filename, err := h.reports.SummaryPDF(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// Statement godoc
// @Summary      Estado de cuenta del cliente en PDF
// @Tags         customers
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/statement.pdf [get]
func (h *SummaryHandler) Statement(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reports.CustomerStatement(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

func summaryQuery(c *fiber.Ctx) (ledger.SummaryQuery, error) {
	var in dto.SummaryRequest
	if err := c.QueryParser(&in); err != nil {
		return ledger.SummaryQuery{}, domain.ErrInvalidInput
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return ledger.SummaryQuery{}, domain.ErrInvalidDate
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return ledger.SummaryQuery{}, domain.ErrInvalidDate
	}
	return ledger.SummaryQuery{CustomerID: in.CustomerID, Start: start, End: end}, nil
}

func sendPDF(c *fiber.Ctx, pdfBytes []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
