// Package metrics expone los contadores de Prometheus del cuaderno.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics colectores del dominio. Un método sobre *Metrics nil no hace nada,
// así los componentes pueden recibirlo opcionalmente.
type Metrics struct {
	CustomersCreated     prometheus.Counter
	TransactionsRecorded *prometheus.CounterVec
	Reminders            *prometheus.CounterVec
	ReminderDuration     prometheus.Histogram
	StorageLoadResets    *prometheus.CounterVec
}

// New registra los colectores en reg (usar prometheus.NewRegistry() en pruebas).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CustomersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "cartera_customers_created_total",
			Help: "Total number of customers created",
		}),
		TransactionsRecorded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cartera_transactions_recorded_total",
			Help: "Total number of transactions recorded, by type",
		}, []string{"type"}),
		Reminders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cartera_reminders_total",
			Help: "Reminder messages produced, by source (none, template, service, fallback)",
		}, []string{"source"}),
		ReminderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cartera_reminder_duration_seconds",
			Help:    "Duration of reminder generation including the external call",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StorageLoadResets: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cartera_storage_load_resets_total",
			Help: "Blobs discarded on load because they were unreadable or malformed",
		}, []string{"key"}),
	}
}

// IncCustomerCreated registra un alta de cliente.
func (m *Metrics) IncCustomerCreated() {
	if m == nil {
		return
	}
	m.CustomersCreated.Inc()
}

// IncTransaction registra una transacción del tipo dado.
func (m *Metrics) IncTransaction(kind string) {
	if m == nil {
		return
	}
	m.TransactionsRecorded.WithLabelValues(kind).Inc()
}

// ObserveReminder registra la fuente y la duración desde start.
func (m *Metrics) ObserveReminder(source string, start time.Time) {
	if m == nil {
		return
	}
	m.Reminders.WithLabelValues(source).Inc()
	m.ReminderDuration.Observe(time.Since(start).Seconds())
}

// IncStorageReset registra un blob descartado al cargar.
func (m *Metrics) IncStorageReset(key string) {
	if m == nil {
		return
	}
	m.StorageLoadResets.WithLabelValues(key).Inc()
}
