// Package kv implements the on-device, string-keyed persistent map that
// every collection in the app is serialized into. It is the Go counterpart
// of a mobile key-value storage API: asynchronous (context-aware) get, set
// and remove over opaque string values.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been set or has
// been removed.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence substrate contract. Implementations must make
// each Set visible atomically: a reader never observes a torn value.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key.
	Keys(ctx context.Context) ([]string, error)
}
