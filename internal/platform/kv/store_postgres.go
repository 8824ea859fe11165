// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements [Store] using the kv_entry table.
//
// The table is created by the embedded migrations in package migration.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Get retrieves the value stored under key.
func (store *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv_entry WHERE key = $1`

	var value string
	err := store.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("postgres_kv_get_failed: %w", err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (store *PostgresStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_entry (key, value, updatedat)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updatedat = now()`

	if _, err := store.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("postgres_kv_set_failed: %w", err)
	}
	return nil
}

// Delete removes key.
func (store *PostgresStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entry WHERE key = $1`

	if _, err := store.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("postgres_kv_delete_failed: %w", err)
	}
	return nil
}

// Ping verifies that the pool can reach the database.
func (store *PostgresStore) Ping(ctx context.Context) error {
	if err := store.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres_kv_ping_failed: %w", err)
	}
	return nil
}

// Compile-time assertion that PostgresStore implements Store.
var _ Store = (*PostgresStore)(nil)
