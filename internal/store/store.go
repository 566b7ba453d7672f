// Package store is the durable key-value adapter behind the ledger. Values
// are JSON text under fixed string keys; the semantics are deliberately
// forgiving: reads fall back to the caller's default and writes degrade to
// in-memory-only with an operator-level log line, never a user-facing error.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open creates the database file (and its directory) if needed, runs
// migrations, and returns a ready store.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get unmarshals the stored value at key into dest and reports whether it
// did. A missing or corrupt entry leaves dest untouched and returns false,
// so whatever default the caller preloaded stays in effect.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		slog.WarnContext(ctx, "Store read failed, using default", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.WarnContext(ctx, "Stored value is corrupt, using default", "key", key, "error", err)
		return false
	}
	return true
}

// Set serializes value and upserts it under key. Persistence failures are
// logged and swallowed: the in-memory value stays authoritative for the
// session even when it could not be made durable.
func (s *Store) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Store write skipped, value not serializable", "key", key, "error", err)
		return
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		slog.ErrorContext(ctx, "Store write failed, value kept in memory only", "key", key, "error", err)
	}
}

// Remove deletes the entry under key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		slog.ErrorContext(ctx, "Store remove failed", "key", key, "error", err)
	}
}
