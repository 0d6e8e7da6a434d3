package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	balance "github.com/jhoicas/Cartera-api/internal/domain/ledger"
)

// PDFGenerator puerto de salida para renderizar los reportes.
type PDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, st Statement) ([]byte, error)
	GenerateSummaryPDF(ctx context.Context, sr SummaryReport) ([]byte, error)
}

// LedgerReader vistas del cuaderno que consume el reporte (implementado por ledger.Service).
type LedgerReader interface {
	GetCustomer(id string) (ledger.CustomerDetail, error)
	SummaryWithBalances(q ledger.SummaryQuery) (ledger.Summary, []balance.CustomerBalance)
	Today() entity.Date
}

// Statement estado de cuenta de un cliente.
type Statement struct {
	BusinessName string
	GeneratedOn  entity.Date
	Customer     entity.Customer
	Due          decimal.Decimal
	Totals       balance.Totals
	Transactions []entity.Transaction // fecha descendente
}

// SummaryReport reporte filtrado con el saldo de cada cliente.
type SummaryReport struct {
	BusinessName string
	GeneratedOn  entity.Date
	Summary      ledger.Summary
	Balances     []balance.CustomerBalance
}
