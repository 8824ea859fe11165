// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/scrollfeed/internal/platform/config"
)

// CredentialChecker turns a password into its stored form and compares a
// supplied password against a stored one.
type CredentialChecker interface {
	// Seal returns the value persisted in [account.Account.Password].
	Seal(plain string) (string, error)

	// Matches reports whether supplied is the password behind stored.
	Matches(stored, supplied string) bool
}

// PlainCredentials stores passwords verbatim and compares them with exact
// string equality. It is the default scheme.
type PlainCredentials struct{}

// Seal returns plain unchanged.
func (PlainCredentials) Seal(plain string) (string, error) { return plain, nil }

// Matches reports stored == supplied.
func (PlainCredentials) Matches(stored, supplied string) bool { return stored == supplied }

// BcryptCredentials stores bcrypt hashes.
//
// Accounts saved under [PlainCredentials] never match once this scheme is
// enabled.
type BcryptCredentials struct {
	// Cost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	Cost int
}

// Seal hashes plain with bcrypt.
func (credentials BcryptCredentials) Seal(plain string) (string, error) {
	cost := credentials.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("auth_credentials_hash_failed: %w", err)
	}
	return string(hashedBytes), nil
}

// Matches compares supplied with the stored hash in constant time.
func (BcryptCredentials) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// NewCredentialChecker returns the checker for a CREDENTIAL_SCHEME value.
func NewCredentialChecker(scheme string) (CredentialChecker, error) {
	switch scheme {
	case "", config.SchemePlain:
		return PlainCredentials{}, nil
	case config.SchemeBcrypt:
		return BcryptCredentials{}, nil
	default:
		return nil, fmt.Errorf("auth: unknown credential scheme %q", scheme)
	}
}

// Compile-time assertions.
var (
	_ CredentialChecker = PlainCredentials{}
	_ CredentialChecker = BcryptCredentials{}
)
