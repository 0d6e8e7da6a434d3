package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cartera-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// schemaKVBlobs tabla clave → blob JSON.
const schemaKVBlobs = `
	CREATE TABLE IF NOT EXISTS kv_blobs (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// BlobStore implementación de BlobStore (usable con pool o tx).
type BlobStore struct {
	q       Querier
	closeFn func()
}

// NewBlobStore construye el adaptador. Pasar pool o tx (Querier).
// closeFn se invoca en Close (ej. pool.Close); puede ser nil.
func NewBlobStore(q Querier, closeFn func()) *BlobStore {
	return &BlobStore{q: q, closeFn: closeFn}
}

// EnsureSchema crea la tabla kv_blobs si no existe.
func (s *BlobStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaKVBlobs); err != nil {
		return fmt.Errorf("create kv_blobs: %w", err)
	}
	return nil
}

// Get obtiene el blob por clave.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.q.QueryRow(ctx, `SELECT value::text FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get blob %s: %w", key, err)
	}
	return value, true, nil
}

// Set hace upsert del blob completo.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("set blob %s: %w", key, err)
	}
	return nil
}

// Close libera el pool si se indicó.
func (s *BlobStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}
