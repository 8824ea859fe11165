// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/scrollfeed/internal/platform/ctxutil"
)

// ErrNilAccount is returned by [Store.Save] when given no account.
var ErrNilAccount = errors.New("account_store: nil account")

// # Repository Contracts

// DirectoryRepository loads and replaces the complete account directory.
//
// # Semantics
//
// GetAll returns an empty directory (not an error) when nothing has been
// saved yet or the stored document cannot be decoded. It returns an error
// only when the backend itself fails. PutAll replaces the whole directory.
type DirectoryRepository interface {
	GetAll(ctx context.Context) (Directory, error)
	PutAll(ctx context.Context, directory Directory) error
}

// # Account Store

// Store reads and writes individual accounts on top of a [DirectoryRepository].
//
// # Concurrency
//
// Save is a read-modify-write of the full directory. Store serializes those
// cycles inside one process; separate processes sharing a backend are
// last-write-wins.
type Store struct {
	repository DirectoryRepository
	mu         sync.Mutex
}

// NewStore constructs a new [Store].
func NewStore(repository DirectoryRepository) *Store {
	return &Store{repository: repository}
}

// Get returns the account saved under username.
//
// The account is absent when username is empty, when no entry exists, or when
// the directory cannot be read. Read failures are logged and never surface to
// the caller.
func (store *Store) Get(ctx context.Context, username string) (*Account, bool) {
	if username == "" {
		return nil, false
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	directory, err := store.repository.GetAll(ctx)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "account_directory_read_failed",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return nil, false
	}

	account, found := directory[username]
	if !found || account == nil {
		return nil, false
	}
	return account.clone(), true
}

// Save inserts or replaces the account stored under username.
//
// The directory is loaded, updated for that single key, and written back as
// one blob. If the backend read fails Save returns the error instead of
// writing a directory that would drop every other account.
func (store *Store) Save(ctx context.Context, username string, account *Account) error {
	if account == nil {
		return ErrNilAccount
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	directory, err := store.repository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("account_store_save_failed: %w", err)
	}

	directory[username] = account.clone()

	if err := store.repository.PutAll(ctx, directory); err != nil {
		return fmt.Errorf("account_store_save_failed: %w", err)
	}
	return nil
}

// All returns a copy of the full directory. Read failures yield an empty one.
func (store *Store) All(ctx context.Context) Directory {
	store.mu.Lock()
	defer store.mu.Unlock()

	directory, err := store.repository.GetAll(ctx)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "account_directory_read_failed", slog.Any("error", err))
		return Directory{}
	}

	snapshot := make(Directory, len(directory))
	for username, account := range directory {
		if account != nil {
			snapshot[username] = account.clone()
		}
	}
	return snapshot
}
