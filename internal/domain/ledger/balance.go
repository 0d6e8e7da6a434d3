// Package ledger contiene el motor de saldos: funciones puras sobre la colección
// de transacciones, sin acceso a almacenamiento.
package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/domain/entity"
)

// AllCustomers valor del filtro de cliente que no restringe.
const AllCustomers = "all"

// Totals sumas de créditos y pagos de un conjunto de transacciones.
type Totals struct {
	Credits  decimal.Decimal
	Payments decimal.Decimal
}

// Net créditos menos pagos.
func (t Totals) Net() decimal.Decimal {
	return t.Credits.Sub(t.Payments)
}

// Filter criterios del reporte. Start y End son inclusivos; nil no restringe.
type Filter struct {
	CustomerID string // "" o "all" = todos
	Start      *entity.Date
	End        *entity.Date
}

// Matches aplica los tres ejes del filtro a una transacción.
// El límite superior abarca el día completo: date < End+1.
func (f Filter) Matches(tx entity.Transaction) bool {
	if id := strings.TrimSpace(f.CustomerID); id != "" && id != AllCustomers && tx.CustomerID != id {
		return false
	}
	if f.Start != nil && tx.Date.Before(*f.Start) {
		return false
	}
	if f.End != nil && !tx.Date.Before(f.End.AddDays(1)) {
		return false
	}
	return true
}

// DueOf saldo pendiente del cliente: créditos menos pagos. Cero si no tiene movimientos.
func DueOf(customerID string, txs []entity.Transaction) decimal.Decimal {
	due := decimal.Zero
	for _, tx := range txs {
		if tx.CustomerID == customerID {
			due = due.Add(tx.Signed())
		}
	}
	return due
}

// TotalDue suma de DueOf sobre todos los clientes.
func TotalDue(customers []entity.Customer, txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(DueOf(c.ID, txs))
	}
	return total
}

// FilteredTotals suma créditos y pagos de las transacciones que cumplen el filtro.
func FilteredTotals(txs []entity.Transaction, f Filter) Totals {
	out := Totals{Credits: decimal.Zero, Payments: decimal.Zero}
	for _, tx := range txs {
		if !f.Matches(tx) {
			continue
		}
		switch tx.Kind {
		case entity.KindCredit:
			out.Credits = out.Credits.Add(tx.Amount)
		case entity.KindPayment:
			out.Payments = out.Payments.Add(tx.Amount)
		}
	}
	return out
}

// CustomerTotals créditos y pagos históricos de un cliente.
func CustomerTotals(customerID string, txs []entity.Transaction) Totals {
	return FilteredTotals(txs, Filter{CustomerID: customerID})
}

// TransactionsOf transacciones del cliente en orden de inserción.
func TransactionsOf(customerID string, txs []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0)
	for _, tx := range txs {
		if tx.CustomerID == customerID {
			out = append(out, tx)
		}
	}
	return out
}

// SortForDisplay devuelve una copia ordenada por fecha descendente;
// en la misma fecha, la última registrada va primero.
func SortForDisplay(txs []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, len(txs))
	for i := range txs {
		out[len(txs)-1-i] = txs[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// CustomerBalance fila del listado principal.
type CustomerBalance struct {
	Customer entity.Customer
	Due      decimal.Decimal
}

// Balances saldo de cada cliente, ordenado por nombre (sin distinguir mayúsculas).
func Balances(customers []entity.Customer, txs []entity.Transaction) []CustomerBalance {
	dues := make(map[string]decimal.Decimal, len(customers))
	for _, tx := range txs {
		d, ok := dues[tx.CustomerID]
		if !ok {
			d = decimal.Zero
		}
		dues[tx.CustomerID] = d.Add(tx.Signed())
	}
	out := make([]CustomerBalance, 0, len(customers))
	for _, c := range customers {
		due, ok := dues[c.ID]
		if !ok {
			due = decimal.Zero
		}
		out = append(out, CustomerBalance{Customer: c, Due: due})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Customer.Name) < strings.ToLower(out[j].Customer.Name)
	})
	return out
}
