package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

const defaultKVTable = "kv_store"

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresBackend keeps every key as one row of a two-column table.
type PostgresBackend struct {
	db    *sqlx.DB
	table string
}

// NewPostgresBackend constructs the backend; invalid table names fall back to kv_store.
func NewPostgresBackend(db *sqlx.DB, table string) *PostgresBackend {
	if !identPattern.MatchString(table) {
		table = defaultKVTable
	}
	return &PostgresBackend{db: db, table: table}
}

// EnsureSchema creates the key-value table when missing.
func (r *PostgresBackend) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`, r.table)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}

// Get returns the value stored for key.
func (r *PostgresBackend) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, r.table)
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.ErrKeyNotFound
		}
		return "", fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

// Set upserts a single key.
func (r *PostgresBackend) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, r.upsertQuery(), key, value); err != nil {
		return classifyPQ(fmt.Sprintf("upsert %s", key), err)
	}
	return nil
}

// SetMany upserts every key inside one transaction.
func (r *PostgresBackend) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	query := r.upsertQuery()
	for key, value := range values {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			_ = tx.Rollback()
			return classifyPQ(fmt.Sprintf("upsert %s", key), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return classifyPQ("commit save", err)
	}
	return nil
}

// Remove deletes key.
func (r *PostgresBackend) Remove(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, r.table)
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *PostgresBackend) upsertQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`, r.table)
}

// classifyPQ maps out-of-space conditions (SQLSTATE class 53) to the quota error.
func classifyPQ(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "53" {
		return appErrors.Wrap(err, appErrors.ErrQuotaExceeded.Code, appErrors.ErrQuotaExceeded.Status, appErrors.ErrQuotaExceeded.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
