package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/memory"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/storage"
)

// failingStore BlobStore que siempre falla.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disco no disponible")
}
func (failingStore) Set(context.Context, string, []byte) error { return errors.New("disco lleno") }
func (failingStore) Close() error                              { return nil }

func newStorage(t *testing.T) (*storage.LedgerStorage, *memory.BlobStore, *metrics.Metrics) {
	t.Helper()
	blobs := memory.NewBlobStore()
	m := metrics.New(prometheus.NewRegistry())
	return storage.NewLedgerStorage(blobs, zerolog.Nop(), m), blobs, m
}

func sampleTransactions() []entity.Transaction {
	return []entity.Transaction{
		{
			ID: "t1", CustomerID: "c1", Kind: entity.KindCredit,
			Amount: decimal.RequireFromString("100.50"), Date: entity.NewDate(2024, time.January, 31),
			Description: "Initial due",
		},
		{
			ID: "t2", CustomerID: "c1", Kind: entity.KindPayment,
			Amount: decimal.RequireFromString("0.01"), Date: entity.NewDate(2024, time.February, 1),
		},
	}
}

// ── Round trip ────────────────────────────────────────────────────────────────

func TestLedgerStorage_RoundTripClientes(t *testing.T) {
	s, _, _ := newStorage(t)
	ctx := context.Background()
	in := []entity.Customer{
		{ID: "c1", Name: "Alice", Phone: "555-0101", Address: "Calle 1"},
		{ID: "c2", Name: "Bob"},
	}

	require.NoError(t, s.SaveCustomers(ctx, in))
	assert.Equal(t, in, s.LoadCustomers(ctx))
}

func TestLedgerStorage_RoundTripTransacciones(t *testing.T) {
	s, _, _ := newStorage(t)
	ctx := context.Background()
	in := sampleTransactions()

	require.NoError(t, s.SaveTransactions(ctx, in))
	out := s.LoadTransactions(ctx)

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].CustomerID, out[i].CustomerID)
		assert.Equal(t, in[i].Kind, out[i].Kind)
		assert.True(t, in[i].Amount.Equal(out[i].Amount), "amount %d", i)
		assert.True(t, in[i].Date.Equal(out[i].Date), "date %d", i)
		assert.Equal(t, in[i].Description, out[i].Description)
	}
}

func TestLedgerStorage_FormatoPersistido(t *testing.T) {
	s, blobs, _ := newStorage(t)
	ctx := context.Background()
	require.NoError(t, s.SaveTransactions(ctx, sampleTransactions()[:1]))

	raw, ok, err := blobs.Get(ctx, "transactions")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t,
		`[{"id":"t1","customerId":"c1","type":"credit","amount":100.5,"date":"2024-01-31","description":"Initial due"}]`,
		string(raw))
}

// ── Carga tolerante ───────────────────────────────────────────────────────────

func TestLedgerStorage_ClaveAusenteEsVacia(t *testing.T) {
	s, _, m := newStorage(t)
	ctx := context.Background()

	assert.Empty(t, s.LoadCustomers(ctx))
	assert.NotNil(t, s.LoadTransactions(ctx), "debe devolver slice vacío, no nil")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StorageLoadResets.WithLabelValues("customers")))
}

func TestLedgerStorage_BlobInvalidoSeReinicia(t *testing.T) {
	cases := map[string]string{
		"json roto":          `[{"id":"t1"`,
		"no es arreglo":      `{"id":"t1"}`,
		"tipo desconocido":   `[{"id":"t1","customerId":"c1","type":"refund","amount":5,"date":"2024-01-01"}]`,
		"monto cero":         `[{"id":"t1","customerId":"c1","type":"credit","amount":0,"date":"2024-01-01"}]`,
		"monto negativo":     `[{"id":"t1","customerId":"c1","type":"credit","amount":-3,"date":"2024-01-01"}]`,
		"fecha con hora":     `[{"id":"t1","customerId":"c1","type":"credit","amount":5,"date":"2024-01-01T10:00:00Z"}]`,
		"sin customerId":     `[{"id":"t1","type":"credit","amount":5,"date":"2024-01-01"}]`,
		"ids duplicados":     `[{"id":"t1","customerId":"c1","type":"credit","amount":5,"date":"2024-01-01"},{"id":"t1","customerId":"c1","type":"payment","amount":1,"date":"2024-01-02"}]`,
		"uno bueno uno malo": `[{"id":"t1","customerId":"c1","type":"credit","amount":5,"date":"2024-01-01"},{"id":"t2","customerId":"c1","type":"credit","amount":"abc","date":"2024-01-01"}]`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			s, blobs, m := newStorage(t)
			ctx := context.Background()
			require.NoError(t, blobs.Set(ctx, "transactions", []byte(blob)))

			assert.Empty(t, s.LoadTransactions(ctx), "un registro inválido reinicia toda la colección")
			assert.Equal(t, 1.0, testutil.ToFloat64(m.StorageLoadResets.WithLabelValues("transactions")))
		})
	}
}

func TestLedgerStorage_ClienteSinNombreSeReinicia(t *testing.T) {
	s, blobs, _ := newStorage(t)
	ctx := context.Background()
	require.NoError(t, blobs.Set(ctx, "customers", []byte(`[{"id":"c1","name":"  "}]`)))

	assert.Empty(t, s.LoadCustomers(ctx))
}

func TestLedgerStorage_ErrorDelBackend(t *testing.T) {
	s := storage.NewLedgerStorage(failingStore{}, zerolog.Nop(), nil)
	ctx := context.Background()

	assert.Empty(t, s.LoadCustomers(ctx), "la carga nunca propaga errores")
	assert.Error(t, s.SaveCustomers(ctx, []entity.Customer{{ID: "c1", Name: "A"}}),
		"el guardado sí reporta el error al controlador")
}
