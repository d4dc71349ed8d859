package repository

import (
	"context"
	"errors"
	"fmt"

	"zentube/pkg/database"

	"github.com/jackc/pgx/v5"
)

// postgresStore keeps values in the kv_store table
type postgresStore struct {
	db *database.PostgresDB
}

// NewPostgresStore creates a Store backed by PostgreSQL
func NewPostgresStore(db *database.PostgresDB) Store {
	return &postgresStore{db: db}
}

func (r *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := r.db.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (r *postgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *postgresStore) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (r *postgresStore) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}
