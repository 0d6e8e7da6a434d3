package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cartera-api/internal/application/dto"
	"github.com/jhoicas/Cartera-api/internal/application/ledger"
)

// CustomerHandler maneja el listado, alta, edición y detalle de clientes (protegido).
type CustomerHandler struct {
	svc *ledger.Service
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(svc *ledger.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List godoc
// @Summary      Listar clientes con su saldo
// @Description  Clientes ordenados por nombre con el saldo pendiente de cada uno y el total por cobrar.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CustomerListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list := h.svc.ListCustomers()
	out := dto.CustomerListResponse{
		Customers: make([]dto.CustomerBalanceDTO, 0, len(list.Customers)),
		TotalDue:  list.TotalDue,
	}
	for _, b := range list.Customers {
		out.Customers = append(out.Customers, dto.CustomerBalanceDTO{
			CustomerResponse: toCustomerResponse(b.Customer),
			Due:              b.Due,
		})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Description  initialDue > 0 registra un crédito "Initial due" con fecha de hoy.
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "name (obligatorio), phone, address, initialDue"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.svc.AddCustomer(c.Context(), ledger.CustomerFields{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	}, in.InitialDue)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(customer))
}

// Update godoc
// @Summary      Editar cliente
// @Description  Reemplaza nombre, teléfono y dirección. Un id inexistente no modifica nada (updated=false).
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "name (obligatorio), phone, address"
// @Success      200   {object}  dto.UpdateCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, ok, err := h.svc.UpdateCustomer(c.Context(), c.Params("id"), ledger.CustomerFields{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	out := dto.UpdateCustomerResponse{Updated: ok}
	if ok {
		resp := toCustomerResponse(customer)
		out.Customer = &resp
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle del cliente
// @Description  Saldo, totales y transacciones ordenadas por fecha descendente.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.svc.GetCustomer(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	out := dto.CustomerDetailResponse{
		Customer:     toCustomerResponse(detail.Customer),
		Due:          detail.Due,
		Credits:      detail.Totals.Credits,
		Payments:     detail.Totals.Payments,
		Transactions: make([]dto.TransactionResponse, 0, len(detail.Transactions)),
	}
	for _, tx := range detail.Transactions {
		out.Transactions = append(out.Transactions, toTransactionResponse(tx))
	}
	return c.JSON(out)
}
