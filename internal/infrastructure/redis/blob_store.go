// Package redis implementa el BlobStore sobre Redis (go-redis v9).
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Cartera-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// DefaultPrefix prefijo de claves si la configuración no define otro.
const DefaultPrefix = "cartera:"

// BlobStore guarda cada blob como un string bajo prefix+key.
type BlobStore struct {
	client *goredis.Client
	prefix string
}

// Open crea el cliente desde una URL redis:// y verifica la conexión.
func Open(ctx context.Context, url, prefix string) (*BlobStore, error) {
	if url == "" {
		return nil, fmt.Errorf("redis: REDIS_URL no configurado")
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewBlobStore(client, prefix), nil
}

// NewBlobStore envuelve un cliente existente.
func NewBlobStore(client *goredis.Client, prefix string) *BlobStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &BlobStore{client: client, prefix: prefix}
}

// Get lee el blob; redis.Nil significa clave ausente.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return v, true, nil
}

// Set sobrescribe el blob sin expiración.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Close cierra el cliente.
func (s *BlobStore) Close() error {
	return s.client.Close()
}
