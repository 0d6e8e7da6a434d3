package http

import (
	"github.com/jhoicas/Cartera-api/internal/application/dto"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
)

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address}
}

func toTransactionResponse(tx entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		CustomerID:  tx.CustomerID,
		Type:        string(tx.Kind),
		Amount:      tx.Amount,
		Date:        tx.Date.String(),
		Description: tx.Description,
	}
}

// parseOptionalDate: "" → nil.
func parseOptionalDate(s string) (*entity.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
