package entity

import "github.com/shopspring/decimal"

// Kind tipo de transacción de la cuenta de un cliente.
type Kind string

const (
	KindCredit  Kind = "credit"  // el cliente queda debiendo (fiado)
	KindPayment Kind = "payment" // el cliente abona
)

// Valid indica si el tipo es uno de los literales soportados.
func (k Kind) Valid() bool {
	return k == KindCredit || k == KindPayment
}

// Transaction representa un movimiento (crédito o pago) de un cliente.
// No se modifica ni se elimina una vez registrado.
type Transaction struct {
	ID          string
	CustomerID  string
	Kind        Kind
	Amount      decimal.Decimal // siempre > 0
	Date        Date
	Description string
}

// Signed devuelve el monto con signo: + para crédito, - para pago.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindPayment {
		return t.Amount.Neg()
	}
	return t.Amount
}
