package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// InitialDue > 0 registra un crédito sintético con fecha de hoy.
type CreateCustomerRequest struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	InitialDue decimal.Decimal `json:"initialDue"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerResponse resultado de la edición; Updated=false si el id no existe.
type UpdateCustomerResponse struct {
	Updated  bool              `json:"updated"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// CustomerBalanceDTO fila del listado principal.
type CustomerBalanceDTO struct {
	CustomerResponse
	Due decimal.Decimal `json:"due"`
}

// CustomerListResponse respuesta de GET /api/customers.
type CustomerListResponse struct {
	Customers []CustomerBalanceDTO `json:"customers"`
	TotalDue  decimal.Decimal      `json:"totalDue"`
}

// CreateTransactionRequest body para POST /api/customers/:id/transactions.
// Amount es puntero para distinguir "ausente" de cero; Date vacío = hoy.
type CreateTransactionRequest struct {
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        string           `json:"date,omitempty"`
	Description string           `json:"description,omitempty"`
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// CustomerDetailResponse respuesta de GET /api/customers/:id.
// Transactions ordenadas por fecha descendente.
type CustomerDetailResponse struct {
	Customer     CustomerResponse      `json:"customer"`
	Due          decimal.Decimal       `json:"due"`
	Credits      decimal.Decimal       `json:"credits"`
	Payments     decimal.Decimal       `json:"payments"`
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryRequest filtros de GET /api/summary (query string).
type SummaryRequest struct {
	CustomerID string `query:"customerId"` // vacío o "all" = todos
	StartDate  string `query:"startDate"`  // YYYY-MM-DD inclusivo
	EndDate    string `query:"endDate"`    // YYYY-MM-DD inclusivo (día completo)
}

// SummaryResponse totales filtrados del reporte.
type SummaryResponse struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName,omitempty"`
	StartDate    string          `json:"startDate,omitempty"`
	EndDate      string          `json:"endDate,omitempty"`
	Credits      decimal.Decimal `json:"credits"`
	Payments     decimal.Decimal `json:"payments"`
	Net          decimal.Decimal `json:"net"`
	TotalDue     decimal.Decimal `json:"totalDue"`
}

// ReminderResponse mensaje de cobro listo para copiar.
type ReminderResponse struct {
	CustomerID string          `json:"customerId"`
	Due        decimal.Decimal `json:"due"`
	Message    string          `json:"message"`
	Source     string          `json:"source"` // none | template | service | fallback
}
