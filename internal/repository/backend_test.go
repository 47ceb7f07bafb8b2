package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/storage"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend(0)

	_, err := b.Get(ctx, "students")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)

	require.NoError(t, b.Set(ctx, "students", "[]"))
	value, err := b.Get(ctx, "students")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
	assert.Equal(t, []string{"students"}, b.Keys())

	require.NoError(t, b.Remove(ctx, "students"))
	_, err = b.Get(ctx, "students")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
}

func TestMemoryBackendQuota(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend(20)

	require.NoError(t, b.Set(ctx, "a", "0123456789"))
	// replacing a key only counts the new value
	require.NoError(t, b.Set(ctx, "a", "0123456789abcdef"))

	err := b.Set(ctx, "b", "0123456789")
	assert.ErrorIs(t, err, appErrors.ErrQuotaExceeded)

	value, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", value)

	b.SetCapacity(0)
	assert.NoError(t, b.Set(ctx, "b", "0123456789"))
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	files, err := storage.NewLocalStorage(t.TempDir(), 16)
	require.NoError(t, err)
	b := NewFileBackend(files)

	_, err = b.Get(ctx, "tasks")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)

	require.NoError(t, b.Set(ctx, "tasks", `[{"id":"T1"}]`))
	value, err := b.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"T1"}]`, value)

	assert.ErrorIs(t, b.Set(ctx, "grades", `[{"id":"N1"}]`), appErrors.ErrQuotaExceeded)

	require.NoError(t, b.Remove(ctx, "tasks"))
	_, err = b.Get(ctx, "tasks")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
}

func TestRedisBackendWithoutClient(t *testing.T) {
	ctx := context.Background()
	b := NewRedisBackend(nil, "mcp:", nil)

	_, err := b.Get(ctx, "students")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
	assert.NoError(t, b.Set(ctx, "students", "[]"))
	assert.NoError(t, b.SetMany(ctx, map[string]string{"students": "[]"}))
	assert.NoError(t, b.Remove(ctx, "students"))
	assert.NoError(t, b.Close())
	assert.Equal(t, "mcp:students", b.key("students"))
}

func TestRedisBackendClassifiesOOM(t *testing.T) {
	b := NewRedisBackend(nil, "", nil)

	err := b.classify("redis set grades", errors.New("OOM command not allowed when used memory > 'maxmemory'."))
	assert.ErrorIs(t, err, appErrors.ErrQuotaExceeded)

	err = b.classify("redis set grades", errors.New("i/o timeout"))
	assert.NotErrorIs(t, err, appErrors.ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "redis set grades")
}

func TestPostgresBackendGet(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	b := NewPostgresBackend(db, "kv_store")

	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
		WithArgs("students").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"S001"}]`))

	value, err := b.Get(context.Background(), "students")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"S001"}]`, value)

	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
		WithArgs("grades").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = b.Get(context.Background(), "grades")
	assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendSetMany(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	b := NewPostgresBackend(db, "kv_store")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("settings", `{}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, b.SetMany(context.Background(), map[string]string{"settings": `{}`}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendDiskFull(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	b := NewPostgresBackend(db, "kv_store")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("grades", `[]`).
		WillReturnError(&pq.Error{Code: "53100", Message: "could not extend file"})
	mock.ExpectRollback()

	err := b.SetMany(context.Background(), map[string]string{"grades": `[]`})
	assert.ErrorIs(t, err, appErrors.ErrQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendSchemaAndRemove(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	b := NewPostgresBackend(db, "kv; DROP TABLE users")

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM kv_store WHERE key = \$1`).
		WithArgs("currentUser").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO kv_store .* ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("currentUser", "null").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, b.EnsureSchema(context.Background()))
	require.NoError(t, b.Remove(context.Background(), "currentUser"))
	require.NoError(t, b.Set(context.Background(), "currentUser", "null"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
