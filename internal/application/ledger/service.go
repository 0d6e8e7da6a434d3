// Package ledger es el controlador del cuaderno: dueño único del estado
// (clientes y transacciones), aplica las mutaciones y arma las vistas.
//
// Toda mutación construye la nueva colección, la persiste completa y solo
// entonces la publica en memoria; si el guardado falla el estado no cambia.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Cartera-api/internal/domain"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	"github.com/jhoicas/Cartera-api/internal/domain/repository"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/metrics"
)

// InitialDueDescription descripción del crédito sintético creado con el cliente.
const InitialDueDescription = "Initial due"

// State colecciones del cuaderno en orden de inserción.
type State struct {
	Customers    []entity.Customer
	Transactions []entity.Transaction
}

// Service gestor de estado y casos de uso del cuaderno.
type Service struct {
	mu    sync.RWMutex
	state State

	store    Persistence
	drafter  ReminderDrafter
	metrics  *metrics.Metrics
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
	inFlight atomic.Bool
}

// Option personaliza el servicio (reloj y generador de ids en pruebas).
type Option func(*Service)

// WithClock fija el reloj usado para "hoy".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator reemplaza uuid.New.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithMetrics registra los contadores del dominio.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService construye el servicio con estado vacío; llamar Load para hidratarlo.
func NewService(store Persistence, drafter ReminderDrafter, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		state:   State{Customers: []entity.Customer{}, Transactions: []entity.Transaction{}},
		store:   store,
		drafter: drafter,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load lee ambas colecciones en paralelo y reemplaza el estado en memoria.
// Si el contexto se cancela durante la lectura el estado no cambia.
// Las transacciones cuyo cliente no existe se descartan.
func (s *Service) Load(ctx context.Context) error {
	var customers []entity.Customer
	var txs []entity.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customers = s.store.LoadCustomers(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		txs = s.store.LoadTransactions(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("ledger: cargar estado: %w", err)
	}

	txs = s.dropOrphans(customers, txs)

	s.mu.Lock()
	s.state = State{Customers: customers, Transactions: txs}
	s.mu.Unlock()

	s.log.Info().Int("customers", len(customers)).Int("transactions", len(txs)).Msg("estado cargado")
	return nil
}

// Snapshot copia del estado actual.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Customers:    append([]entity.Customer(nil), s.state.Customers...),
		Transactions: append([]entity.Transaction(nil), s.state.Transactions...),
	}
}

// Today fecha de calendario según el reloj del servicio.
func (s *Service) Today() entity.Date {
	return entity.DateOf(s.now())
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// AddCustomer valida el nombre, asigna id y agrega el cliente. Si initialDue > 0
// agrega además un crédito "Initial due" con fecha de hoy. Ambas escrituras se
// aplican juntas o ninguna.
func (s *Service) AddCustomer(ctx context.Context, in CustomerFields, initialDue decimal.Decimal) (entity.Customer, error) {
	fields, err := in.normalize()
	if err != nil {
		return entity.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := entity.Customer{ID: s.newID(), Name: fields.Name, Phone: fields.Phone, Address: fields.Address}
	customers := appendCopy(s.state.Customers, customer)

	txs := s.state.Transactions
	withInitialDue := initialDue.IsPositive()
	if withInitialDue {
		txs = appendCopy(txs, entity.Transaction{
			ID:          s.newID(),
			CustomerID:  customer.ID,
			Kind:        entity.KindCredit,
			Amount:      initialDue,
			Date:        s.Today(),
			Description: InitialDueDescription,
		})
	}

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return entity.Customer{}, fmt.Errorf("ledger: agregar cliente: %w", err)
	}
	if withInitialDue {
		if err := s.store.SaveTransactions(ctx, txs); err != nil {
			if rbErr := s.store.SaveCustomers(ctx, s.state.Customers); rbErr != nil {
				s.log.Error().Err(rbErr).Msg("ledger: no se pudo revertir el blob de clientes")
			}
			return entity.Customer{}, fmt.Errorf("ledger: agregar saldo inicial: %w", err)
		}
	}

	s.state.Customers = customers
	s.state.Transactions = txs
	s.metrics.IncCustomerCreated()
	if withInitialDue {
		s.metrics.IncTransaction(string(entity.KindCredit))
	}
	s.log.Info().Str("customer_id", customer.ID).Bool("initial_due", withInitialDue).Msg("cliente agregado")
	return customer, nil
}

// UpdateCustomer reemplaza nombre, teléfono y dirección del cliente con ese id.
// Un id inexistente es un no-op silencioso: devuelve (false, nil).
func (s *Service) UpdateCustomer(ctx context.Context, id string, in CustomerFields) (entity.Customer, bool, error) {
	fields, err := in.normalize()
	if err != nil {
		return entity.Customer{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfCustomer(s.state.Customers, id)
	if idx < 0 {
		s.log.Debug().Str("customer_id", id).Msg("actualización ignorada: cliente inexistente")
		return entity.Customer{}, false, nil
	}

	customers := append([]entity.Customer(nil), s.state.Customers...)
	// el id guardado, no el recibido: el del request puede apuntar a un buffer reutilizado
	updated := entity.Customer{ID: customers[idx].ID, Name: fields.Name, Phone: fields.Phone, Address: fields.Address}
	customers[idx] = updated

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return entity.Customer{}, false, fmt.Errorf("ledger: actualizar cliente: %w", err)
	}
	s.state.Customers = customers
	return updated, true, nil
}

// AddTransaction valida y agrega un crédito o pago. No muta el estado si el monto
// falta o no es positivo, el tipo es inválido o el cliente no existe.
// Date cero = hoy.
func (s *Service) AddTransaction(ctx context.Context, in TransactionInput) (entity.Transaction, error) {
	if in.Amount == nil || !in.Amount.IsPositive() {
		return entity.Transaction{}, domain.ErrInvalidAmount
	}
	if !in.Kind.Valid() {
		return entity.Transaction{}, domain.ErrInvalidKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfCustomer(s.state.Customers, in.CustomerID)
	if idx < 0 {
		return entity.Transaction{}, domain.ErrNotFound
	}
	date := in.Date
	if date.IsZero() {
		date = s.Today()
	}

	tx := entity.Transaction{
		ID:          s.newID(),
		CustomerID:  s.state.Customers[idx].ID,
		Kind:        in.Kind,
		Amount:      *in.Amount,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
	}
	txs := appendCopy(s.state.Transactions, tx)
	if err := s.store.SaveTransactions(ctx, txs); err != nil {
		return entity.Transaction{}, fmt.Errorf("ledger: agregar transacción: %w", err)
	}
	s.state.Transactions = txs
	s.metrics.IncTransaction(string(tx.Kind))
	s.log.Info().Str("customer_id", tx.CustomerID).Str("type", string(tx.Kind)).
		Str("amount", tx.Amount.String()).Msg("transacción registrada")
	return tx, nil
}

// ── Recordatorio ──────────────────────────────────────────────────────────────

// Reminder redacta el mensaje de cobro del cliente. Solo se permite una solicitud
// a la vez: mientras otra está en curso devuelve domain.ErrReminderInFlight.
func (s *Service) Reminder(ctx context.Context, customerID string) (entity.Customer, decimal.Decimal, ReminderResult, error) {
	customer, due, err := s.customerDue(customerID)
	if err != nil {
		return entity.Customer{}, decimal.Zero, ReminderResult{}, err
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return entity.Customer{}, decimal.Zero, ReminderResult{}, domain.ErrReminderInFlight
	}
	defer s.inFlight.Store(false)

	start := time.Now()
	res := s.drafter.Generate(ctx, customer.Name, due)
	s.metrics.ObserveReminder(string(res.Source), start)
	return customer, due, ReminderResult(res), nil
}

// ReminderInFlight indica si hay una solicitud de recordatorio pendiente.
func (s *Service) ReminderInFlight() bool {
	return s.inFlight.Load()
}

func (s *Service) customerDue(customerID string) (entity.Customer, decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOfCustomer(s.state.Customers, customerID)
	if idx < 0 {
		return entity.Customer{}, decimal.Zero, domain.ErrNotFound
	}
	c := s.state.Customers[idx]
	return c, dueOf(c.ID, s.state.Transactions), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// dropOrphans quita las transacciones de clientes inexistentes (p. ej. tras
// reiniciar un blob de clientes malformado) para que el total adeudado y los
// resúmenes sigan cuadrando.
func (s *Service) dropOrphans(customers []entity.Customer, txs []entity.Transaction) []entity.Transaction {
	known := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		known[c.ID] = struct{}{}
	}
	kept := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if _, ok := known[tx.CustomerID]; ok {
			kept = append(kept, tx)
		}
	}
	if dropped := len(txs) - len(kept); dropped > 0 {
		s.metrics.IncStorageReset(repository.KeyTransactions)
		s.log.Warn().Int("dropped", dropped).Msg("transacciones sin cliente descartadas")
	}
	return kept
}

func appendCopy[T any](src []T, v T) []T {
	out := make([]T, len(src), len(src)+1)
	copy(out, src)
	return append(out, v)
}

func indexOfCustomer(customers []entity.Customer, id string) int {
	for i, c := range customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}
