package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/domain"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	balance "github.com/jhoicas/Cartera-api/internal/domain/ledger"
)

// CustomerList pantalla principal: clientes por nombre con su saldo y el total.
type CustomerList struct {
	Customers []balance.CustomerBalance
	TotalDue  decimal.Decimal
}

// CustomerDetail pantalla de detalle de un cliente.
type CustomerDetail struct {
	Customer     entity.Customer
	Due          decimal.Decimal
	Totals       balance.Totals
	Transactions []entity.Transaction // fecha descendente
}

// SummaryQuery filtros del reporte. CustomerID vacío o "all" = todos; límites nil = sin límite.
type SummaryQuery struct {
	CustomerID string
	Start      *entity.Date
	End        *entity.Date
}

// Summary resultado del reporte filtrado.
type Summary struct {
	Query        SummaryQuery
	CustomerName string
	Totals       balance.Totals
	TotalDue     decimal.Decimal
}

// ListCustomers arma el listado principal.
func (s *Service) ListCustomers() CustomerList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CustomerList{
		Customers: balance.Balances(s.state.Customers, s.state.Transactions),
		TotalDue:  balance.TotalDue(s.state.Customers, s.state.Transactions),
	}
}

// GetCustomer arma el detalle; domain.ErrNotFound si el id no existe.
func (s *Service) GetCustomer(id string) (CustomerDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := indexOfCustomer(s.state.Customers, id)
	if idx < 0 {
		return CustomerDetail{}, domain.ErrNotFound
	}
	c := s.state.Customers[idx]
	return CustomerDetail{
		Customer:     c,
		Due:          balance.DueOf(c.ID, s.state.Transactions),
		Totals:       balance.CustomerTotals(c.ID, s.state.Transactions),
		Transactions: balance.SortForDisplay(balance.TransactionsOf(c.ID, s.state.Transactions)),
	}, nil
}

// SummaryWithBalances resumen filtrado más el saldo de cada cliente, leídos
// bajo el mismo bloqueo. Con un cliente específico solo va su fila.
func (s *Service) SummaryWithBalances(q SummaryQuery) (Summary, []balance.CustomerBalance) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := balance.Balances(s.state.Customers, s.state.Transactions)
	if q.CustomerID != "" && q.CustomerID != balance.AllCustomers {
		filtered := rows[:0:0]
		for _, r := range rows {
			if r.Customer.ID == q.CustomerID {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	return s.summaryLocked(q), rows
}

// Summary totales filtrados. Un id de cliente inexistente o un rango invertido
// simplemente no coinciden con ninguna transacción.
func (s *Service) Summary(q SummaryQuery) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaryLocked(q)
}

func (s *Service) summaryLocked(q SummaryQuery) Summary {
	out := Summary{Query: q}
	if q.CustomerID != "" && q.CustomerID != balance.AllCustomers {
		if idx := indexOfCustomer(s.state.Customers, q.CustomerID); idx >= 0 {
			out.CustomerName = s.state.Customers[idx].Name
		}
	}

	out.Totals = balance.FilteredTotals(s.state.Transactions, balance.Filter{
		CustomerID: q.CustomerID,
		Start:      q.Start,
		End:        q.End,
	})
	out.TotalDue = balance.TotalDue(s.state.Customers, s.state.Transactions)
	return out
}

func dueOf(customerID string, txs []entity.Transaction) decimal.Decimal {
	return balance.DueOf(customerID, txs)
}
