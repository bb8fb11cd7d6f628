// Package storage provides the key-value persistence boundary the board and
// theme snapshots are written to. Backends are interchangeable: SQLite for the
// default local install, Redis for a shared store, and memory for tests.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set
var ErrNotFound = errors.New("key not found")

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is an opaque string key-value store
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying connection
	Close() error
}

// Compile-time verification that the backends implement Store
var (
	_ Store = (*SQLite)(nil)
	_ Store = (*Redis)(nil)
	_ Store = (*Memory)(nil)
)
