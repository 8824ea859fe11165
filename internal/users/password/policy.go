// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package password implements the password validation policy.

[Validate] is a pure function from (password, identity) to a [Result]. Rules
run in a fixed order and the first failing rule decides the reason, so the
message a user sees is part of the contract, not just accept/reject:

 1. length (too short, then too long)
 2. banned substrings ("password", then "qwerty")
 3. identity overlap (username in password, then password in username)
 4. character classes (lowercase, uppercase, digit, special)

Substring rules are case-insensitive. Character classes are plain ASCII
ranges and never consult the locale.
*/
package password

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/validate"
)

// # Length Bounds

const (
	MinLength = 8
	MaxLength = 128
)

// # Reasons

const (
	ReasonTooShort         = "Password must be at least 8 characters long"
	ReasonTooLong          = "Password cannot be longer than 128 characters"
	ReasonContainsPassword = `Password cannot include "password"`
	ReasonContainsQwerty   = `Password cannot include "QWERTY"`
	ReasonContainsUsername = "Password cannot contain username"
	ReasonUsernameContains = "Username cannot contain password"
	ReasonMissingLowercase = "Password must contain a lowercase letter"
	ReasonMissingUppercase = "Password must contain an uppercase letter"
	ReasonMissingDigit     = "Password must contain a number"
	ReasonMissingSpecial   = "Password must contain a special character"
	ReasonAcceptable       = "Password Acceptable"
)

// banned lists the substrings no password may contain, in check order.
var banned = []struct {
	word   string
	reason string
}{
	{"password", ReasonContainsPassword},
	{"qwerty", ReasonContainsQwerty},
}

const fieldPassword = "password"

// Result is the outcome of [Validate]. Reason is always set.
type Result struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"message"`
}

// Err converts a rejection into a VALIDATION_ERROR. It returns nil when the
// password was accepted.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	return apperr.ValidationError(r.Reason, apperr.FieldError{Field: fieldPassword, Message: r.Reason})
}

func reject(reason string) Result { return Result{Reason: reason} }

// Validate evaluates password against the policy. An empty identity skips the
// username overlap rules.
func Validate(password, identity string) Result {
	// ── 1. Length ─────────────────────────────────────────────────────────

	length := validate.Length(password)
	if length < MinLength {
		return reject(ReasonTooShort)
	}
	if length > MaxLength {
		return reject(ReasonTooLong)
	}

	// ── 2. Banned Substrings ──────────────────────────────────────────────

	lowered := lower(password)
	for _, rule := range banned {
		if strings.Contains(lowered, rule.word) {
			return reject(rule.reason)
		}
	}

	// ── 3. Identity Overlap ───────────────────────────────────────────────

	if identity != "" {
		loweredIdentity := lower(identity)
		if strings.Contains(lowered, loweredIdentity) {
			return reject(ReasonContainsUsername)
		}
		// Also rejects a password that merely appears inside the username.
		if strings.Contains(loweredIdentity, lowered) {
			return reject(ReasonUsernameContains)
		}
	}

	// ── 4. Character Classes ──────────────────────────────────────────────

	classes := classify(password)
	switch {
	case !classes.lower:
		return reject(ReasonMissingLowercase)
	case !classes.upper:
		return reject(ReasonMissingUppercase)
	case !classes.digit:
		return reject(ReasonMissingDigit)
	case !classes.special:
		return reject(ReasonMissingSpecial)
	}

	return Result{Accepted: true, Reason: ReasonAcceptable}
}

// charClasses records which classes appeared in a password.
type charClasses struct {
	lower, upper, digit, special bool
}

// classify scans password once. A single space belongs to no class; every
// other rune outside a-z, A-Z and 0-9 is special, including all non-ASCII.
func classify(password string) charClasses {
	var seen charClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			seen.lower = true
		case r >= 'A' && r <= 'Z':
			seen.upper = true
		case r >= '0' && r <= '9':
			seen.digit = true
		case r == ' ':
		default:
			seen.special = true
		}
	}
	return seen
}

// lower folds s for the substring rules. A Caser is stateful, so each call
// gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
