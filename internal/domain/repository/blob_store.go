package repository

import "context"

// Claves de los dos blobs persistidos.
const (
	KeyCustomers    = "customers"
	KeyTransactions = "transactions"
)

// BlobStore define el puerto de persistencia clave → blob.
// Cada Set sobrescribe el valor completo (last-write-wins).
type BlobStore interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
