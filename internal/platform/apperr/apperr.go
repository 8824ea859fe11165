// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the rejection and failure taxonomy shared by every
scrollfeed component.

The account core never raises for bad input. Each rejected operation returns
an [AppError] whose Message is the exact human-readable string the UI shows
(for example "Username too short"). Shells decide how to render it:

  - HTTP: [AppError.HTTPStatus] selects the response status.
  - CLI: the Message is printed verbatim.

Infrastructure failures are wrapped with [Internal] so the cause is logged
but never shown to the user.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for scrollfeed.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "CONFLICT").
	Code string `json:"code"`
	// Message is the human-readable text rendered by the UI.
	Message string `json:"error"`
	// HTTPStatus is the status used by the HTTP facade.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, kept for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field failures for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input name that failed (e.g. "username").
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Rejections

// NotFound creates a 404 [AppError] for a named resource.
//
//	apperr.NotFound("Account") // "Account not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Conflict creates a 409 [AppError] for duplicate usernames.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// # Failures

// Internal creates a 500 [AppError] wrapping an unexpected error.
// The cause is stored for logging but is never rendered.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// MessageOf returns the user-facing message for err.
//
// Errors outside the taxonomy collapse to the generic [Internal] message so
// storage details never reach the UI.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if ae := As(err); ae != nil {
		return ae.Message
	}
	return Internal(err).Message
}
