//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cartera-api/pkg/config"
)

// Integración contra un PostgreSQL real: TEST_DATABASE_URL=postgres://...
func TestOpenBlobStore_Integracion(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	s, err := OpenBlobStore(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "test_customers", []byte(`[{"id":"1","name":"Alice"}]`)))
	v, ok, err := s.Get(ctx, "test_customers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","name":"Alice"}]`, string(v))
}
