package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"zentube/pkg/database"
)

// sqliteStore keeps values in a local kv_store table
type sqliteStore struct {
	db *database.SQLiteDB
}

// NewSQLiteStore creates a Store backed by a local SQLite file
func NewSQLiteStore(db *database.SQLiteDB) Store {
	return &sqliteStore{db: db}
}

func (r *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (r *sqliteStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *sqliteStore) Delete(ctx context.Context, key string) error {
	if _, err := r.db.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (r *sqliteStore) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}
