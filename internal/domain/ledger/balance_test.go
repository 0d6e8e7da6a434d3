package ledger_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	"github.com/jhoicas/Cartera-api/internal/domain/ledger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) entity.Date { return entity.NewDate(2024, time.March, d) }

func tx(id, customer string, kind entity.Kind, amount string, date entity.Date) entity.Transaction {
	return entity.Transaction{ID: id, CustomerID: customer, Kind: kind, Amount: dec(amount), Date: date}
}

// ── DueOf ─────────────────────────────────────────────────────────────────────

func TestDueOf_SinTransaccionesEsCero(t *testing.T) {
	due := ledger.DueOf("alice", nil)
	assert.True(t, due.IsZero(), "un cliente sin movimientos debe tener saldo 0")
}

func TestDueOf_CreditoSumaPagoResta(t *testing.T) {
	txs := []entity.Transaction{
		tx("1", "alice", entity.KindCredit, "100.00", day(1)),
		tx("2", "alice", entity.KindPayment, "40.00", day(2)),
	}
	assert.True(t, dec("60").Equal(ledger.DueOf("alice", txs)))
}

func TestDueOf_SobrepagoEsNegativo(t *testing.T) {
	txs := []entity.Transaction{
		tx("1", "alice", entity.KindCredit, "10", day(1)),
		tx("2", "alice", entity.KindPayment, "25.50", day(2)),
	}
	assert.True(t, dec("-15.50").Equal(ledger.DueOf("alice", txs)))
}

// TestDueOf_AisladoDeOtrosClientes: cada crédito sube y cada pago baja el saldo
// del cliente, sin importar los movimientos intercalados de otros clientes.
func TestDueOf_AisladoDeOtrosClientes(t *testing.T) {
	var txs []entity.Transaction
	prev := ledger.DueOf("alice", txs)

	steps := []struct {
		customer string
		kind     entity.Kind
		amount   string
	}{
		{"alice", entity.KindCredit, "30"},
		{"bob", entity.KindCredit, "500"},
		{"alice", entity.KindPayment, "10"},
		{"bob", entity.KindPayment, "200"},
		{"alice", entity.KindCredit, "0.01"},
	}
	for i, s := range steps {
		txs = append(txs, tx(fmt.Sprint(i), s.customer, s.kind, s.amount, day(1)))
		cur := ledger.DueOf("alice", txs)
		switch {
		case s.customer != "alice":
			assert.True(t, prev.Equal(cur), "paso %d: movimiento de otro cliente no debe afectar", i)
		case s.kind == entity.KindCredit:
			assert.True(t, cur.GreaterThan(prev), "paso %d: crédito debe aumentar el saldo", i)
		default:
			assert.True(t, cur.LessThan(prev), "paso %d: pago debe disminuir el saldo", i)
		}
		prev = cur
	}
	assert.True(t, dec("20.01").Equal(prev))
}

// ── TotalDue ──────────────────────────────────────────────────────────────────

// TestTotalDue_IgualACreditosMenosPagos propiedad: para secuencias aleatorias,
// TotalDue coincide con Σcréditos − Σpagos del conjunto completo.
func TestTotalDue_IgualACreditosMenosPagos(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	customers := []entity.Customer{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}

	for round := 0; round < 50; round++ {
		n := rng.Intn(40)
		txs := make([]entity.Transaction, 0, n)
		credits, payments := decimal.Zero, decimal.Zero
		for i := 0; i < n; i++ {
			kind := entity.KindCredit
			if rng.Intn(2) == 0 {
				kind = entity.KindPayment
			}
			amount := decimal.New(rng.Int63n(100000)+1, -2)
			if kind == entity.KindCredit {
				credits = credits.Add(amount)
			} else {
				payments = payments.Add(amount)
			}
			txs = append(txs, entity.Transaction{
				ID:         fmt.Sprintf("%d-%d", round, i),
				CustomerID: customers[rng.Intn(len(customers))].ID,
				Kind:       kind,
				Amount:     amount,
				Date:       day(1 + rng.Intn(28)),
			})
		}
		got := ledger.TotalDue(customers, txs)
		assert.True(t, credits.Sub(payments).Equal(got),
			"ronda %d: esperado %s, obtenido %s", round, credits.Sub(payments), got)

		all := ledger.FilteredTotals(txs, ledger.Filter{CustomerID: ledger.AllCustomers})
		assert.True(t, all.Net().Equal(got), "ronda %d: el filtro sin restricción debe cuadrar", round)
	}
}

// ── FilteredTotals ────────────────────────────────────────────────────────────

func TestFilteredTotals_LimitesDeFecha(t *testing.T) {
	txs := []entity.Transaction{
		tx("1", "alice", entity.KindCredit, "10", day(9)),
		tx("2", "alice", entity.KindCredit, "20", day(10)),
		tx("3", "alice", entity.KindCredit, "30", day(15)),
		tx("4", "alice", entity.KindCredit, "40", day(16)),
	}
	start, end := day(10), day(15)

	totals := ledger.FilteredTotals(txs, ledger.Filter{Start: &start, End: &end})
	assert.True(t, dec("50").Equal(totals.Credits),
		"inicio y fin iguales a la fecha de la transacción la incluyen; un día después se excluye")
	assert.True(t, totals.Payments.IsZero())
}

func TestFilteredTotals_SoloInicioOSoloFin(t *testing.T) {
	txs := []entity.Transaction{
		tx("1", "alice", entity.KindCredit, "10", day(1)),
		tx("2", "alice", entity.KindPayment, "5", day(20)),
	}
	start := day(2)
	end := day(19)

	fromStart := ledger.FilteredTotals(txs, ledger.Filter{Start: &start})
	assert.True(t, fromStart.Credits.IsZero())
	assert.True(t, dec("5").Equal(fromStart.Payments))

	untilEnd := ledger.FilteredTotals(txs, ledger.Filter{End: &end})
	assert.True(t, dec("10").Equal(untilEnd.Credits))
	assert.True(t, untilEnd.Payments.IsZero())
}

// Escenario D: filtro por cliente sin fechas = sumas propias del cliente.
func TestFilteredTotals_PorCliente(t *testing.T) {
	txs := []entity.Transaction{
		tx("1", "alice", entity.KindCredit, "100", day(1)),
		tx("2", "bob", entity.KindCredit, "70", day(1)),
		tx("3", "alice", entity.KindPayment, "40", day(2)),
		tx("4", "bob", entity.KindPayment, "7", day(3)),
	}
	got := ledger.FilteredTotals(txs, ledger.Filter{CustomerID: "alice"})
	own := ledger.CustomerTotals("alice", txs)

	assert.True(t, dec("100").Equal(got.Credits))
	assert.True(t, dec("40").Equal(got.Payments))
	assert.True(t, own.Credits.Equal(got.Credits))
	assert.True(t, own.Payments.Equal(got.Payments))
}

// ── Vistas ────────────────────────────────────────────────────────────────────

func TestSortForDisplay_FechaDescendenteYUltimoPrimero(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "x", entity.KindCredit, "1", day(1)),
		tx("b", "x", entity.KindCredit, "1", day(5)),
		tx("c", "x", entity.KindCredit, "1", day(1)),
	}
	sorted := ledger.SortForDisplay(txs)

	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, "a", txs[0].ID, "no debe modificar el slice original")
}

func TestBalances_OrdenPorNombreConSaldo(t *testing.T) {
	customers := []entity.Customer{{ID: "2", Name: "bob"}, {ID: "1", Name: "Alice"}}
	txs := []entity.Transaction{tx("t", "2", entity.KindCredit, "5", day(1))}

	rows := ledger.Balances(customers, txs)

	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Customer.Name)
	assert.True(t, rows[0].Due.IsZero())
	assert.True(t, dec("5").Equal(rows[1].Due))
}
