package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the dashboard's document store and the wallet session's durable state
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path and bootstraps the schema.
func NewSQLiteStore(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "store")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer keeps read-check-then-write sequences inside transactions serialized
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id               TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			image            TEXT NOT NULL DEFAULT '',
			funding_goal     INTEGER NOT NULL,
			current_amount   INTEGER NOT NULL DEFAULT 0,
			supporters_count INTEGER NOT NULL DEFAULT 0,
			top_donor        TEXT NOT NULL DEFAULT '',
			created_at       TEXT NOT NULL,
			updated_at       TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS care_packages (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			threshold   INTEGER NOT NULL,
			eligibility TEXT NOT NULL DEFAULT '',
			image       TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS publishers (
			id                   TEXT PRIMARY KEY,
			wallet_address       TEXT NOT NULL,
			wallet_address_lower TEXT NOT NULL UNIQUE,
			added_by             TEXT NOT NULL,
			created_at           TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS donations (
			id            TEXT PRIMARY KEY,
			project_id    TEXT NOT NULL,
			donor_address TEXT NOT NULL,
			donor_lower   TEXT NOT NULL,
			amount        INTEGER NOT NULL,
			created_at    TEXT NOT NULL,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_donations_donor ON donations(donor_lower);
		CREATE INDEX IF NOT EXISTS idx_donations_project ON donations(project_id);

		CREATE TABLE IF NOT EXISTS local_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timeFormat is fixed-width so stored timestamps sort lexically
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func (s *SQLiteStore) timestamp() string {
	return s.now().Format(timeFormat)
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
