package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/application/reminder"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
)

// Persistence espejo del estado en el almacén. Load nunca falla (colección vacía);
// Save sobrescribe la colección completa.
type Persistence interface {
	LoadCustomers(ctx context.Context) []entity.Customer
	LoadTransactions(ctx context.Context) []entity.Transaction
	SaveCustomers(ctx context.Context, customers []entity.Customer) error
	SaveTransactions(ctx context.Context, txs []entity.Transaction) error
}

// ReminderDrafter redacta el mensaje de cobro (implementado por reminder.Drafter).
type ReminderDrafter interface {
	Generate(ctx context.Context, customerName string, due decimal.Decimal) reminder.Result
}
