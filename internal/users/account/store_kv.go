// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/taibuivan/scrollfeed/internal/platform/constants"
	"github.com/taibuivan/scrollfeed/internal/platform/ctxutil"
	"github.com/taibuivan/scrollfeed/internal/platform/kv"
)

// KVDirectory implements [DirectoryRepository] as one JSON object stored
// under a single key of a [kv.Store].
//
// The document shape is {"<username>": {"password": "...", "likes": [0, 3]}}.
type KVDirectory struct {
	store kv.Store
	key   string
}

// NewKVDirectory stores the directory under the canonical "accounts" key.
func NewKVDirectory(store kv.Store) *KVDirectory {
	return &KVDirectory{store: store, key: constants.KeyAccounts}
}

// GetAll loads and decodes the directory.
//
// A missing key and an undecodable document both yield an empty directory.
// Only backend failures are returned.
func (repository *KVDirectory) GetAll(ctx context.Context) (Directory, error) {
	raw, found, err := repository.store.Get(ctx, repository.key)
	if err != nil {
		return nil, fmt.Errorf("kv_directory_get_failed: %w", err)
	}
	if !found || raw == "" {
		return Directory{}, nil
	}

	var directory Directory
	if err := json.Unmarshal([]byte(raw), &directory); err != nil || directory == nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "account_directory_corrupt",
			slog.String("key", repository.key),
			slog.Any("error", err),
		)
		return Directory{}, nil
	}

	for username, account := range directory {
		if account == nil {
			delete(directory, username)
			continue
		}
		account.normalize()
	}
	return directory, nil
}

// PutAll encodes and stores the whole directory.
func (repository *KVDirectory) PutAll(ctx context.Context, directory Directory) error {
	encoded, err := json.Marshal(directory)
	if err != nil {
		return fmt.Errorf("kv_directory_encode_failed: %w", err)
	}
	if err := repository.store.Set(ctx, repository.key, string(encoded)); err != nil {
		return fmt.Errorf("kv_directory_put_failed: %w", err)
	}
	return nil
}

// Compile-time assertion that KVDirectory implements DirectoryRepository.
var _ DirectoryRepository = (*KVDirectory)(nil)
