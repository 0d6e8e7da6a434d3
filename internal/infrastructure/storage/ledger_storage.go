// Package storage es el adaptador entre el estado del cuaderno y el BlobStore:
// serializa cada colección completa como un arreglo JSON bajo su clave.
//
// La carga nunca falla hacia el llamador: clave ausente, JSON ilegible o un solo
// registro inválido devuelven la colección vacía y se registra un warn.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	"github.com/jhoicas/Cartera-api/internal/domain/repository"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/metrics"
)

// LedgerStorage lee y escribe los blobs customers y transactions.
type LedgerStorage struct {
	store    repository.BlobStore
	validate *validator.Validate
	log      zerolog.Logger
	metrics  *metrics.Metrics
}

// NewLedgerStorage construye el adaptador. m puede ser nil.
func NewLedgerStorage(store repository.BlobStore, log zerolog.Logger, m *metrics.Metrics) *LedgerStorage {
	return &LedgerStorage{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
		metrics:  m,
	}
}

// LoadCustomers devuelve los clientes guardados o una colección vacía.
func (s *LedgerStorage) LoadCustomers(ctx context.Context) []entity.Customer {
	return load(ctx, s, repository.KeyCustomers, customerRecord.toEntity)
}

// LoadTransactions devuelve las transacciones guardadas o una colección vacía.
func (s *LedgerStorage) LoadTransactions(ctx context.Context) []entity.Transaction {
	return load(ctx, s, repository.KeyTransactions, transactionRecord.toEntity)
}

// SaveCustomers sobrescribe el blob customers con la colección completa.
func (s *LedgerStorage) SaveCustomers(ctx context.Context, customers []entity.Customer) error {
	records := make([]customerRecord, 0, len(customers))
	for _, c := range customers {
		records = append(records, toCustomerRecord(c))
	}
	return s.save(ctx, repository.KeyCustomers, records)
}

// SaveTransactions sobrescribe el blob transactions con la colección completa.
func (s *LedgerStorage) SaveTransactions(ctx context.Context, txs []entity.Transaction) error {
	records := make([]transactionRecord, 0, len(txs))
	for _, t := range txs {
		records = append(records, toTransactionRecord(t))
	}
	return s.save(ctx, repository.KeyTransactions, records)
}

func (s *LedgerStorage) save(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage: serializar %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("storage: guardar %s: %w", key, err)
	}
	return nil
}

func load[R any, T any](ctx context.Context, s *LedgerStorage, key string, convert func(R) (T, error)) []T {
	empty := make([]T, 0)

	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.reset(key, err)
		return empty
	}
	if !ok || len(data) == 0 {
		return empty
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		s.reset(key, fmt.Errorf("json: %w", err))
		return empty
	}
	if err := s.validate.Var(records, "unique=ID"); err != nil {
		s.reset(key, fmt.Errorf("ids duplicados: %w", err))
		return empty
	}

	out := make([]T, 0, len(records))
	for i, r := range records {
		if err := s.validate.Struct(r); err != nil {
			s.reset(key, fmt.Errorf("registro %d: %w", i, err))
			return empty
		}
		v, err := convert(r)
		if err != nil {
			s.reset(key, fmt.Errorf("registro %d: %w", i, err))
			return empty
		}
		out = append(out, v)
	}
	return out
}

func (s *LedgerStorage) reset(key string, cause error) {
	s.metrics.IncStorageReset(key)
	s.log.Warn().Err(cause).Str("key", key).Msg("blob ilegible o inválido; se usa colección vacía")
}
