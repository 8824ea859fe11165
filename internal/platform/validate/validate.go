// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer. Form checks in scrollfeed are
// ordered: the first failing rule is the one the user sees, so most callers
// build their chain with [FailFast].
package validate

import (
	"unicode/utf16"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs     []apperr.FieldError
	failFast bool
}

// FailFast returns a Validator that keeps only the first failure.
//
// Once a rule has failed every later rule in the chain is skipped, and
// [Validator.Err] reports that first failure's message as the error message.
func FailFast() *Validator {
	return &Validator{failFast: true}
}

// Required fails if the value is empty. Whitespace counts as content.
func (v *Validator) Required(field, value, message string) *Validator {
	if v.stopped() {
		return v
	}
	if value == "" {
		v.add(field, message)
	}
	return v
}

// Length counts s in UTF-16 code units, the unit browser forms report.
// Characters outside the Basic Multilingual Plane (most emoji) count as two.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// MinLen fails if the [Length] of value is below min.
func (v *Validator) MinLen(field, value string, min int, message string) *Validator {
	if v.stopped() {
		return v
	}
	if Length(value) < min {
		v.add(field, message)
	}
	return v
}

// MaxLen fails if the [Length] of value exceeds max.
func (v *Validator) MaxLen(field, value string, max int, message string) *Validator {
	if v.stopped() {
		return v
	}
	if Length(value) > max {
		v.add(field, message)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("confirmation", confirm != password, "Confirmation does not match password")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if v.stopped() {
		return v
	}
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// In fail-fast mode the error message is the failing rule's message.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	if v.failFast {
		return apperr.ValidationError(v.errs[0].Message, v.errs[0])
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

func (v *Validator) stopped() bool {
	return v.failFast && len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError(message, apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
