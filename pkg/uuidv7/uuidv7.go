// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// They are used for request correlation IDs and ingest batch IDs, both of
// which are easier to read in logs and indexes when they sort by time.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7.
//
// If the clock sequence or entropy source fails it falls back to a random
// UUIDv4 instead of panicking, so callers always get a usable identifier.
func New() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// NewString is [New] rendered in canonical form.
func NewString() string {
	return New().String()
}
