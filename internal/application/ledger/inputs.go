package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/application/reminder"
	"github.com/jhoicas/Cartera-api/internal/domain"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
)

// CustomerFields datos editables del cliente (alta y edición).
type CustomerFields struct {
	Name    string
	Phone   string
	Address string
}

func (f CustomerFields) normalize() (CustomerFields, error) {
	out := CustomerFields{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
	}
	if out.Name == "" {
		return CustomerFields{}, domain.ErrNameRequired
	}
	return out, nil
}

// TransactionInput datos del formulario de transacción. Amount nil = ausente.
type TransactionInput struct {
	CustomerID  string
	Kind        entity.Kind
	Amount      *decimal.Decimal
	Date        entity.Date
	Description string
}

// ReminderResult mensaje redactado y su origen.
type ReminderResult reminder.Result
