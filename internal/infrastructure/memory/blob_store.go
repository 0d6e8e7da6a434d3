// Package memory implementa un BlobStore en memoria para pruebas y ejecuciones efímeras.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Cartera-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore mapa clave → blob protegido por mutex.
type BlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewBlobStore construye un store vacío.
func NewBlobStore() *BlobStore {
	return &BlobStore{data: make(map[string][]byte)}
}

// Get devuelve una copia del blob.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set sobrescribe el blob.
func (s *BlobStore) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.data[key] = cp
	s.mu.Unlock()
	return nil
}

// Close no hace nada.
func (s *BlobStore) Close() error { return nil }
