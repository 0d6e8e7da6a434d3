package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cartera-api/internal/application/dto"
	"github.com/jhoicas/Cartera-api/internal/application/ledger"
)

// ReminderHandler redacta el recordatorio de pago de un cliente.
type ReminderHandler struct {
	svc *ledger.Service
}

// NewReminderHandler construye el handler.
func NewReminderHandler(svc *ledger.Service) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

// Draft godoc
// @Summary      Redactar recordatorio de pago
// @Description  Sin saldo pendiente devuelve un texto fijo (source=none). Con proveedor de IA
// @Description  configurado lo usa (source=service, o fallback si falla); si no, plantilla local.
// @Description  Solo se atiende una solicitud a la vez. Timeout interno de 10 s.
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ReminderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/reminder [post]
func (h *ReminderHandler) Draft(c *fiber.Ctx) error {
	customer, due, res, err := h.svc.Reminder(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReminderResponse{
		CustomerID: customer.ID,
		Due:        due,
		Message:    res.Message,
		Source:     string(res.Source),
	})
}
