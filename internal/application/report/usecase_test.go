package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/domain"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	balance "github.com/jhoicas/Cartera-api/internal/domain/ledger"
)

type fakeReader struct {
	customers []balance.CustomerBalance
}

func (f *fakeReader) GetCustomer(id string) (ledger.CustomerDetail, error) {
	for _, c := range f.customers {
		if c.Customer.ID == id {
			return ledger.CustomerDetail{Customer: c.Customer, Due: c.Due}, nil
		}
	}
	return ledger.CustomerDetail{}, domain.ErrNotFound
}

func (f *fakeReader) SummaryWithBalances(q ledger.SummaryQuery) (ledger.Summary, []balance.CustomerBalance) {
	rows := f.customers
	if q.CustomerID != "" && q.CustomerID != balance.AllCustomers {
		rows = nil
		for _, c := range f.customers {
			if c.Customer.ID == q.CustomerID {
				rows = append(rows, c)
			}
		}
	}
	return ledger.Summary{Query: q}, rows
}

func (f *fakeReader) Today() entity.Date { return entity.NewDate(2024, time.May, 2) }

type fakeGenerator struct {
	statement *Statement
	summary   *SummaryReport
	err       error
}

func (g *fakeGenerator) GenerateStatementPDF(_ context.Context, st Statement) ([]byte, error) {
	g.statement = &st
	return []byte("%PDF-statement"), g.err
}

func (g *fakeGenerator) GenerateSummaryPDF(_ context.Context, sr SummaryReport) ([]byte, error) {
	g.summary = &sr
	return []byte("%PDF-summary"), g.err
}

func newReader() *fakeReader {
	return &fakeReader{customers: []balance.CustomerBalance{
		{Customer: entity.Customer{ID: "a", Name: "Ana María"}, Due: decimal.NewFromInt(40)},
		{Customer: entity.Customer{ID: "b", Name: "Beto"}, Due: decimal.Zero},
	}}
}

func TestCustomerStatement(t *testing.T) {
	gen := &fakeGenerator{}
	uc := NewUseCase(newReader(), gen, "Tienda Don Pepe")

	b, name, err := uc.CustomerStatement(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-statement", string(b))
	assert.Equal(t, "estado_ana_mar_a_2024-05-02.pdf", name)
	require.NotNil(t, gen.statement)
	assert.Equal(t, "Tienda Don Pepe", gen.statement.BusinessName)
	assert.True(t, gen.statement.Due.Equal(decimal.NewFromInt(40)))
}

func TestCustomerStatement_ClienteInexistente(t *testing.T) {
	uc := NewUseCase(newReader(), &fakeGenerator{}, "x")
	_, _, err := uc.CustomerStatement(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummaryPDF_FiltraFilasPorCliente(t *testing.T) {
	gen := &fakeGenerator{}
	uc := NewUseCase(newReader(), gen, "x")

	_, name, err := uc.SummaryPDF(context.Background(), ledger.SummaryQuery{CustomerID: "b"})
	require.NoError(t, err)
	assert.Equal(t, "resumen_2024-05-02.pdf", name)
	require.Len(t, gen.summary.Balances, 1)
	assert.Equal(t, "Beto", gen.summary.Balances[0].Customer.Name)

	_, _, err = uc.SummaryPDF(context.Background(), ledger.SummaryQuery{CustomerID: balance.AllCustomers})
	require.NoError(t, err)
	assert.Len(t, gen.summary.Balances, 2)
}

func TestSummaryPDF_ErrorDelGenerador(t *testing.T) {
	uc := NewUseCase(newReader(), &fakeGenerator{err: errors.New("sin memoria")}, "x")
	_, _, err := uc.SummaryPDF(context.Background(), ledger.SummaryQuery{})
	assert.Error(t, err)
}
