// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/platform/kv"
	"github.com/taibuivan/scrollfeed/internal/users/account"
	"github.com/taibuivan/scrollfeed/internal/users/auth"
)

// unreachableStore fails every operation.
type unreachableStore struct{}

var errUnreachable = errors.New("connection refused")

func (unreachableStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errUnreachable
}
func (unreachableStore) Set(context.Context, string, string) error { return errUnreachable }
func (unreachableStore) Delete(context.Context, string) error { return errUnreachable }
func (unreachableStore) Ping(context.Context) error { return errUnreachable }

/*
TestSession_Restore_TrustsStoredName restores a username whose account was
never registered. The session does not reconcile against the directory.
*/
func TestSession_Restore_TrustsStoredName(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set(ctx, "loggedInUser", "Ghost"))

	store := account.NewStore(account.NewKVDirectory(backend))
	session := auth.NewSession(backend)

	assert.Equal(t, "Ghost", session.Restore(ctx))
	username, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, "Ghost", username)

	_, found := store.Get(ctx, "Ghost")
	assert.False(t, found)
}

/*
TestSession_SurvivesRestart persists Establish and Clear for a fresh instance.
*/
func TestSession_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()

	first := auth.NewSession(backend)
	require.NoError(t, first.Establish(ctx, "Bob"))

	second := auth.NewSession(backend)
	assert.Equal(t, "Bob", second.Restore(ctx))

	require.NoError(t, second.Clear(ctx))

	third := auth.NewSession(backend)
	assert.Equal(t, "", third.Restore(ctx))
	_, ok := third.Current()
	assert.False(t, ok)
}

/*
TestSession_BackendFailures keeps reads fail-soft and surfaces write errors.
*/
func TestSession_BackendFailures(t *testing.T) {
	ctx := context.Background()
	session := auth.NewSession(unreachableStore{})

	assert.Equal(t, "", session.Restore(ctx))

	err := session.Establish(ctx, "Bob")
	require.ErrorIs(t, err, errUnreachable)
	_, ok := session.Current()
	assert.False(t, ok, "a failed write leaves the previous identity")

	assert.ErrorIs(t, session.Clear(ctx), errUnreachable)
}
