// Package bolt implementa el BlobStore sobre un archivo bbolt embebido (driver por defecto).
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/Cartera-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BucketLedger bucket único que guarda los blobs del cuaderno.
const BucketLedger = "ledger"

// BlobStore envoltorio de la base bbolt.
type BlobStore struct {
	db *bolt.DB
}

// Open abre (o crea) el archivo y el bucket.
func Open(path string) (*BlobStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bolt: crear directorio: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketLedger))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: crear bucket %s: %w", BucketLedger, err)
	}
	return &BlobStore{db: db}, nil
}

// Get lee el blob; el slice de bbolt solo es válido dentro de la tx, por eso se copia.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketLedger))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketLedger)
		}
		if v := b.Get([]byte(key)); v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("bolt: get %s: %w", key, err)
	}
	return out, out != nil, nil
}

// Set sobrescribe el blob en una sola transacción.
func (s *BlobStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketLedger))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketLedger)
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("bolt: set %s: %w", key, err)
	}
	return nil
}

// Close cierra el archivo.
func (s *BlobStore) Close() error {
	return s.db.Close()
}
