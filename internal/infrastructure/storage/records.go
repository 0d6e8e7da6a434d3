package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/domain/entity"
)

// customerRecord forma persistida de un cliente.
type customerRecord struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// transactionRecord forma persistida de una transacción.
// amount se guarda como número JSON; date como YYYY-MM-DD.
type transactionRecord struct {
	ID          string      `json:"id" validate:"required"`
	CustomerID  string      `json:"customerId" validate:"required"`
	Type        string      `json:"type" validate:"required,oneof=credit payment"`
	Amount      json.Number `json:"amount" validate:"required"`
	Date        string      `json:"date" validate:"required,datetime=2006-01-02"`
	Description string      `json:"description"`
}

func toCustomerRecord(c entity.Customer) customerRecord {
	return customerRecord{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address}
}

func (r customerRecord) toEntity() (entity.Customer, error) {
	if strings.TrimSpace(r.Name) == "" {
		return entity.Customer{}, fmt.Errorf("customer %s: name vacío", r.ID)
	}
	return entity.Customer{ID: r.ID, Name: r.Name, Phone: r.Phone, Address: r.Address}, nil
}

func toTransactionRecord(t entity.Transaction) transactionRecord {
	return transactionRecord{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Type:        string(t.Kind),
		Amount:      json.Number(t.Amount.String()),
		Date:        t.Date.String(),
		Description: t.Description,
	}
}

func (r transactionRecord) toEntity() (entity.Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("transaction %s: amount: %w", r.ID, err)
	}
	if !amount.IsPositive() {
		return entity.Transaction{}, fmt.Errorf("transaction %s: amount %s no es positivo", r.ID, amount)
	}
	date, err := entity.ParseDate(r.Date)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}
	return entity.Transaction{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Kind:        entity.Kind(r.Type),
		Amount:      amount,
		Date:        date,
		Description: r.Description,
	}, nil
}
