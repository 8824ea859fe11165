// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// scrollfeed uses them as X-Request-ID values, so request logs sort by
// arrival time.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string. If the random source fails it falls
// back to a random UUIDv4.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
