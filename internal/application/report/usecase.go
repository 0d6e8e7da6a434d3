// Package report arma los documentos exportables del cuaderno (estado de cuenta
// por cliente y reporte de totales) y delega el render al generador PDF.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Cartera-api/internal/application/ledger"
)

// UseCase genera los PDF exportables.
type UseCase struct {
	ledger       LedgerReader
	generator    PDFGenerator
	businessName string
}

// NewUseCase construye el caso de uso.
func NewUseCase(reader LedgerReader, generator PDFGenerator, businessName string) *UseCase {
	return &UseCase{ledger: reader, generator: generator, businessName: businessName}
}

// CustomerStatement genera el estado de cuenta del cliente.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el cliente no existe.
func (uc *UseCase) CustomerStatement(ctx context.Context, customerID string) ([]byte, string, error) {
	detail, err := uc.ledger.GetCustomer(customerID)
	if err != nil {
		return nil, "", err
	}
	today := uc.ledger.Today()

	pdfBytes, err := uc.generator.GenerateStatementPDF(ctx, Statement{
		BusinessName: uc.businessName,
		GeneratedOn:  today,
		Customer:     detail.Customer,
		Due:          detail.Due,
		Totals:       detail.Totals,
		Transactions: detail.Transactions,
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: estado de cuenta: %w", err)
	}
	return pdfBytes, fmt.Sprintf("estado_%s_%s.pdf", slug(detail.Customer.Name), today), nil
}

// SummaryPDF genera el reporte con los mismos filtros de GET /api/summary.
// Con un cliente específico solo se lista su fila de saldo.
func (uc *UseCase) SummaryPDF(ctx context.Context, q ledger.SummaryQuery) ([]byte, string, error) {
	summary, rows := uc.ledger.SummaryWithBalances(q)
	today := uc.ledger.Today()

	pdfBytes, err := uc.generator.GenerateSummaryPDF(ctx, SummaryReport{
		BusinessName: uc.businessName,
		GeneratedOn:  today,
		Summary:      summary,
		Balances:     rows,
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: resumen: %w", err)
	}
	return pdfBytes, fmt.Sprintf("resumen_%s.pdf", today), nil
}

// slug deja letras y dígitos ASCII en minúscula; el resto pasa a '_'.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "cliente"
	}
	return b.String()
}
