package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cartera-api/internal/infrastructure/metrics"
)

func TestMetrics_Contadores(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.IncCustomerCreated()
	m.IncTransaction("credit")
	m.IncTransaction("credit")
	m.IncTransaction("payment")
	m.ObserveReminder("template", time.Now())
	m.IncStorageReset("transactions")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CustomersCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransactionsRecorded.WithLabelValues("credit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransactionsRecorded.WithLabelValues("payment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reminders.WithLabelValues("template")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StorageLoadResets.WithLabelValues("transactions")))
}

func TestMetrics_NilEsSeguro(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncCustomerCreated()
		m.IncTransaction("credit")
		m.ObserveReminder("none", time.Now())
		m.IncStorageReset("customers")
	})
}
