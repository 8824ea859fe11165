// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kv provides the string-keyed, string-valued store that backs every
piece of persisted scrollfeed state.

The account core was designed against the browser's local storage: a flat
map of strings with no transactions. [Store] keeps that contract so the
account directory ("accounts") and the session scalar ("loggedInUser") can
live in any of the backends below without the core noticing.

Backends:

  - [MemoryStore]: process-local map, used by tests and ephemeral runs.
  - [FileStore]: one JSON document on disk, the closest analogue of local storage.
  - [RedisStore]: keys in Redis under a configurable prefix.
  - [PostgresStore]: rows in the kv_entry table.
  - [SQLiteStore]: rows in a local SQLite database.
*/
package kv

import "context"

// Store is the persistence contract shared by all backends.
//
// # Semantics
//
// Get distinguishes "absent" (found == false, err == nil) from a backend
// failure (err != nil). Set replaces the whole value. Delete of a missing key
// is not an error.
type Store interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Removing an absent key succeeds.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
