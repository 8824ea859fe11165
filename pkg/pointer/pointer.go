// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic helpers for optional values.
package pointer

// To returns a pointer to the provided value.
// It is useful for optional JSON fields that must render as null when unset.
func To[T any](v T) *T {
	return &v
}
