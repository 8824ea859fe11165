// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements [Store] on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path and ensures the
// kv_entry table exists.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("sqlite_kv_mkdir_failed: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite_kv_open_failed: %w", err)
	}

	// SQLite serializes writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	const schema = `
	CREATE TABLE IF NOT EXISTS kv_entry (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite_kv_schema_failed: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get retrieves the value stored under key.
func (store *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := store.db.QueryRowContext(ctx, "SELECT value FROM kv_entry WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("sqlite_kv_get_failed: %w", err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (store *SQLiteStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_entry (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`
	if _, err := store.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("sqlite_kv_set_failed: %w", err)
	}
	return nil
}

// Delete removes key.
func (store *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := store.db.ExecContext(ctx, "DELETE FROM kv_entry WHERE key = ?", key); err != nil {
		return fmt.Errorf("sqlite_kv_delete_failed: %w", err)
	}
	return nil
}

// Ping verifies the database handle.
func (store *SQLiteStore) Ping(ctx context.Context) error {
	return store.db.PingContext(ctx)
}

// Close releases the database handle.
func (store *SQLiteStore) Close() error {
	return store.db.Close()
}

// Compile-time assertion that SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
