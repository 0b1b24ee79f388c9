package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness constraint rejects a write
	ErrDuplicate = errors.New("already exists")
)

// StoreError wraps a failure of the underlying database. Callers should
// surface it as a retryable condition; the store never retries by itself.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError checks if err is or wraps a StoreError
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	// SQLite returns "UNIQUE constraint failed" in the error message
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
