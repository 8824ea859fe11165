// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
//
// The account core reads its logger from the context so fail-soft storage
// reads are reported against the request (or CLI invocation) that hit them.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/scrollfeed/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Identity

// WithIdentity returns a new context carrying the signed-in username.
func WithIdentity(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyIdentity, username)
}

// GetIdentity retrieves the signed-in username.
// Returns false when the request was not gated by an identity check.
func GetIdentity(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(ctxkey.KeyIdentity).(string)
	return username, ok && username != ""
}
