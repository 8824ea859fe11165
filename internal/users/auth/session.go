// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/scrollfeed/internal/platform/constants"
	"github.com/taibuivan/scrollfeed/internal/platform/ctxutil"
	"github.com/taibuivan/scrollfeed/internal/platform/kv"
)

// Session holds the single signed-in identity of one running instance and
// mirrors it to the "loggedInUser" key.
//
// The persisted key is only written by [Session.Establish] and
// [Session.Clear]. Reads never touch storage.
type Session struct {
	store kv.Store
	key   string

	mu       sync.RWMutex
	username string
}

// NewSession returns an empty session bound to store.
func NewSession(store kv.Store) *Session {
	return &Session{store: store, key: constants.KeyLoggedInUser}
}

/*
Restore loads the persisted identity.

Description: The stored username is trusted as-is. Restore does not check
that an account with that name still exists. A failed read leaves the
session signed out.

Parameters:
  - ctx: context.Context

Returns:
  - string: Restored username, "" when signed out
*/
func (session *Session) Restore(ctx context.Context) string {
	username, found, err := session.store.Get(ctx, session.key)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "session_restore_failed", slog.Any("error", err))
		username = ""
	}
	if !found {
		username = ""
	}

	session.mu.Lock()
	session.username = username
	session.mu.Unlock()

	return username
}

// Establish signs username in and persists it. On a write failure the
// previous identity stays in place.
func (session *Session) Establish(ctx context.Context, username string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.store.Set(ctx, session.key, username); err != nil {
		return fmt.Errorf("session_establish_failed: %w", err)
	}
	session.username = username
	return nil
}

// Clear signs out and removes the persisted key. Clearing an empty session
// succeeds.
func (session *Session) Clear(ctx context.Context) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.username = ""
	if err := session.store.Delete(ctx, session.key); err != nil {
		return fmt.Errorf("session_clear_failed: %w", err)
	}
	return nil
}

// Current returns the signed-in username.
func (session *Session) Current() (string, bool) {
	session.mu.RLock()
	defer session.mu.RUnlock()

	return session.username, session.username != ""
}
