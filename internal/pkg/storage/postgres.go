package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	getQuery = `SELECT value FROM kv_store WHERE key = $1`

	setQuery = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	deleteQuery = `DELETE FROM kv_store WHERE key = $1`

	existsQuery = `SELECT EXISTS (SELECT 1 FROM kv_store WHERE key = $1)`
)

// PostgresStorage keeps values in the kv_store table.
type PostgresStorage struct {
	db database.Querier
}

func NewPostgresStorage(db database.Querier) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// EnsureSchema creates the kv_store table when it does not exist yet.
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, getQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.Exec(ctx, setQuery, key, value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, existsQuery, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check key %s: %w", key, err)
	}
	return exists, nil
}
