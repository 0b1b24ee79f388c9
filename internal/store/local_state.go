package store

import (
	"context"
	"database/sql"
	"errors"
)

// Get reads a local state value. ok is false when the key is absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrap("get local state", err)
	}
	return value, true, nil
}

// Set writes a local state value
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, s.timestamp())
	return wrap("set local state", err)
}

// Delete removes a local state value. Missing keys are not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_state WHERE key = ?`, key)
	return wrap("delete local state", err)
}
