package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cartera-api/internal/application/dto"
	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/domain"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
)

// TransactionHandler registra créditos y pagos de un cliente (protegido).
type TransactionHandler struct {
	svc *ledger.Service
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(svc *ledger.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar crédito o pago
// @Description  type = credit | payment; amount > 0; date YYYY-MM-DD (vacío = hoy).
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del cliente"
// @Param        body  body  dto.CreateTransactionRequest  true  "type, amount, date, description"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var date entity.Date
	if in.Date != "" {
		d, err := entity.ParseDate(in.Date)
		if err != nil {
			return writeError(c, domain.ErrInvalidDate)
		}
		date = d
	}
	tx, err := h.svc.AddTransaction(c.Context(), ledger.TransactionInput{
		CustomerID:  c.Params("id"),
		Kind:        entity.Kind(in.Type),
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
}
