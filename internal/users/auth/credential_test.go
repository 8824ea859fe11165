// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/users/auth"
)

/*
TestPlainCredentials compares verbatim.
*/
func TestPlainCredentials(t *testing.T) {
	credentials := auth.PlainCredentials{}

	sealed, err := credentials.Seal("Xyz12!ab")
	require.NoError(t, err)
	assert.Equal(t, "Xyz12!ab", sealed)

	assert.True(t, credentials.Matches(sealed, "Xyz12!ab"))
	assert.False(t, credentials.Matches(sealed, "Xyz12!ab "))
	assert.False(t, credentials.Matches(sealed, "xyz12!ab"))
}

/*
TestBcryptCredentials hashes with a random salt and verifies the original.
*/
func TestBcryptCredentials(t *testing.T) {
	credentials := auth.BcryptCredentials{Cost: 4}

	first, err := credentials.Seal("Xyz12!ab")
	require.NoError(t, err)
	second, err := credentials.Seal("Xyz12!ab")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, credentials.Matches(first, "Xyz12!ab"))
	assert.True(t, credentials.Matches(second, "Xyz12!ab"))
	assert.False(t, credentials.Matches(first, "Xyz12!aB"))

	// Plaintext records never match a bcrypt checker
	assert.False(t, credentials.Matches("Xyz12!ab", "Xyz12!ab"))
}

/*
TestNewCredentialChecker maps configuration values to checkers.
*/
func TestNewCredentialChecker(t *testing.T) {
	checker, err := auth.NewCredentialChecker("plain")
	require.NoError(t, err)
	assert.IsType(t, auth.PlainCredentials{}, checker)

	checker, err = auth.NewCredentialChecker("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, auth.BcryptCredentials{}, checker)

	_, err = auth.NewCredentialChecker("rot13")
	assert.Error(t, err)
}
