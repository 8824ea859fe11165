// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists every key in a single JSON object on disk.
//
// A missing, empty or undecodable file is an empty store; the next write
// replaces it with a valid document. Writes go to a temporary file in the same
// directory and are renamed into place, so readers never observe a half
// written document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path.
// Parent directories are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (store *FileStore) Path() string { return store.path }

// Get returns the value stored under key.
func (store *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entries, err := store.load()
	if err != nil {
		return "", false, err
	}
	value, found := entries[key]
	return value, found, nil
}

// Set stores value under key.
func (store *FileStore) Set(_ context.Context, key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	entries, err := store.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return store.flush(entries)
}

// Delete removes key.
func (store *FileStore) Delete(_ context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	entries, err := store.load()
	if err != nil {
		return err
	}
	if _, found := entries[key]; !found {
		return nil
	}
	delete(entries, key)
	return store.flush(entries)
}

// Ping checks that the backing file, if present, is readable.
func (store *FileStore) Ping(context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	_, err := store.load()
	return err
}

// # Disk I/O

func (store *FileStore) load() (map[string]string, error) {
	entries := make(map[string]string)

	data, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("kv_file_read_failed: %w", err)
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return make(map[string]string), nil
	}
	return entries, nil
}

func (store *FileStore) flush(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("kv_file_encode_failed: %w", err)
	}

	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("kv_file_mkdir_failed: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".kv-*.json")
	if err != nil {
		return fmt.Errorf("kv_file_write_failed: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv_file_write_failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv_file_write_failed: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv_file_write_failed: %w", err)
	}
	if err := os.Rename(tmpName, store.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv_file_rename_failed: %w", err)
	}
	return nil
}

// Compile-time assertion that FileStore implements Store.
var _ Store = (*FileStore)(nil)
