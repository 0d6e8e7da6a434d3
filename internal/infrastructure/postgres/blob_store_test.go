package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier simula kv_blobs en memoria para los SQL del store.
type fakeQuerier struct {
	rows    map[string]string
	execs   []string
	failErr error
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = []byte(r.value)
	return nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if q.failErr != nil {
		return pgconn.CommandTag{}, q.failErr
	}
	q.execs = append(q.execs, sql)
	if strings.Contains(sql, "INSERT INTO kv_blobs") {
		q.rows[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no usado")
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if q.failErr != nil {
		return fakeRow{err: q.failErr}
	}
	v, ok := q.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestBlobStore_ConQuerierFalso(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{rows: map[string]string{}}
	closed := false
	s := NewBlobStore(q, func() { closed = true })

	require.NoError(t, s.EnsureSchema(ctx))
	assert.Contains(t, q.execs[0], "CREATE TABLE IF NOT EXISTS kv_blobs")

	_, ok, err := s.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.False(t, ok, "pgx.ErrNoRows = clave ausente")

	require.NoError(t, s.Set(ctx, "transactions", []byte(`[]`)))
	v, ok, err := s.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(v))

	require.NoError(t, s.Close())
	assert.True(t, closed)
}

func TestBlobStore_ErroresDelDriver(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{rows: map[string]string{}, failErr: errors.New("conexión cerrada")}
	s := NewBlobStore(q, nil)

	_, _, err := s.Get(ctx, "customers")
	assert.ErrorContains(t, err, "get blob customers")
	assert.ErrorContains(t, s.Set(ctx, "customers", []byte(`[]`)), "set blob customers")
	assert.NoError(t, s.Close())
}
