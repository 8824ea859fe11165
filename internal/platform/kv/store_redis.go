// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements [Store] on top of plain Redis strings.
//
// Every key is namespaced with prefix, so "accounts" becomes
// "scrollfeed:accounts" with the default configuration.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis-backed Store.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

/*
Get retrieves the value stored under key.

Description: redis.Nil is mapped to found == false.

Parameters:
  - context: context.Context
  - key: string (unprefixed)

Returns:
  - string: Stored value
  - bool: Whether the key exists
  - error: Connectivity errors
*/
func (store *RedisStore) Get(context context.Context, key string) (string, bool, error) {
	value, err := store.client.Get(context, store.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis_kv_get_failed: %w", err)
	}
	return value, true, nil
}

// Set stores value under key without expiry.
func (store *RedisStore) Set(context context.Context, key, value string) error {
	if err := store.client.Set(context, store.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis_kv_set_failed: %w", err)
	}
	return nil
}

// Delete removes key.
func (store *RedisStore) Delete(context context.Context, key string) error {
	if err := store.client.Del(context, store.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis_kv_delete_failed: %w", err)
	}
	return nil
}

// Ping verifies that the Redis client is healthy.
func (store *RedisStore) Ping(context context.Context) error {
	if err := store.client.Ping(context).Err(); err != nil {
		return fmt.Errorf("redis_kv_ping_failed: %w", err)
	}
	return nil
}

// Compile-time assertion that RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
