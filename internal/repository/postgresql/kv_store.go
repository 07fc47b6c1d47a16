package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
	"github.com/jackc/pgx/v5"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_blobs (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type kvStore struct {
	db database.Querier
}

// NewKVStore returns a kvstore.Store backed by the kv_blobs table.
func NewKVStore(db database.Querier) kvstore.Store {
	return &kvStore{db: db}
}

// MigrateKV creates the kv_blobs table when it does not exist yet.
func MigrateKV(ctx context.Context, db database.Querier) error {
	if _, err := db.Exec(ctx, kvSchema); err != nil {
		return fmt.Errorf("migrate kv_blobs: %w", err)
	}
	return nil
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value::text FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
