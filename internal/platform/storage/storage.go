// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage opens the [kv.Store] selected by configuration.

It owns the connection lifecycle of the networked backends (Redis,
PostgreSQL, MongoDB) and the SQLite handle, so both binaries share one startup path.
*/
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/scrollfeed/internal/platform/config"
	"github.com/taibuivan/scrollfeed/internal/platform/kv"
	"github.com/taibuivan/scrollfeed/internal/platform/migration"
	mongostore "github.com/taibuivan/scrollfeed/internal/platform/mongo"
	pgstore "github.com/taibuivan/scrollfeed/internal/platform/postgres"
	redisstore "github.com/taibuivan/scrollfeed/internal/platform/redis"
)

// Backend is an opened [kv.Store] plus whatever must be closed with it.
type Backend struct {
	// Name is the STORAGE_BACKEND value that produced Store.
	Name string

	// Store is the key-value store the account core runs on.
	Store kv.Store

	closers []func()
}

/*
Open connects the backend named by cfg.StorageBackend.

Description: The postgres backend runs the embedded migrations before the
pool is handed out. Networked backends are pinged during connection.

Parameters:
  - ctx: Startup context with a deadline
  - cfg: *config.Config
  - logger: *slog.Logger

Returns:
  - *Backend: Ready to use, Close when done
  - error: Connection, migration or unknown backend failures
*/
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	backend := &Backend{Name: cfg.StorageBackend}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		backend.Store = kv.NewMemoryStore()

	case config.BackendFile:
		backend.Store = kv.NewFileStore(cfg.StoragePath)

	case config.BackendSQLite:
		store, err := kv.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("storage_open_failed: %w", err)
		}
		backend.Store = store
		backend.onClose(func() {
			if err := store.Close(); err != nil {
				logger.Error("sqlite_close_failed", slog.Any("error", err))
			}
		})

	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, fmt.Errorf("storage_open_failed: %w", err)
		}
		backend.Store = kv.NewRedisStore(client, cfg.RedisKeyPrefix)
		backend.onClose(func() {
			if err := client.Close(); err != nil {
				logger.Error("redis_close_failed", slog.Any("error", err))
			}
		})

	case config.BackendPostgres:
		if err := migration.RunUp(cfg.DatabaseURL, logger); err != nil {
			return nil, fmt.Errorf("storage_open_failed: %w", err)
		}
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("storage_open_failed: %w", err)
		}
		backend.Store = kv.NewPostgresStore(pool)
		backend.onClose(pool.Close)

	case config.BackendMongo:
		client, err := mongostore.NewClient(ctx, cfg.MongoURL, logger)
		if err != nil {
			return nil, fmt.Errorf("storage_open_failed: %w", err)
		}
		backend.Store = kv.NewMongoStore(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
		backend.onClose(func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("mongo_disconnect_failed", slog.Any("error", err))
			}
		})

	default:
		return nil, fmt.Errorf("storage_open_failed: unknown backend %q", cfg.StorageBackend)
	}

	logger.Info("storage_opened", slog.String("backend", backend.Name))
	return backend, nil
}

func (backend *Backend) onClose(closer func()) {
	backend.closers = append(backend.closers, closer)
}

// Close releases the backend's connections in reverse order of creation.
func (backend *Backend) Close() {
	for i := len(backend.closers) - 1; i >= 0; i-- {
		backend.closers[i]()
	}
	backend.closers = nil
}
