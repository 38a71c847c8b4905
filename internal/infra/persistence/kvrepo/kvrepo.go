// Package kvrepo contains the concrete implementation of the persistence
// layer on top of the on-device key-value store. Each collection lives as
// one serialized JSON array (or object) under a fixed storage key, and
// every mutation rewrites that entry in a single Set.
package kvrepo

import (
	"context"
	"encoding/json"

	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/infra/persistence/kv"

	"github.com/pkg/errors"
)

// Fixed storage keys. These match the original device layout, so data
// written by earlier builds stays readable.
const (
	keySession   = "lokabumi:session"
	keyUsers     = "lokabumi:users"
	keyListings  = "lokabumi:listings"
	keyFavorites = "lokabumi:favorites"
	keyOrders    = "lokabumi:orders"
	keyLanguage  = "lokabumi:language"
)

// getCollection loads and decodes a JSON array entry. An absent key is an
// empty collection; malformed JSON is surfaced, never swallowed as empty,
// so corruption cannot silently wipe a collection on the next write.
func getCollection[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []T{}, nil
		}

		return nil, domainerrors.NewStorageExecuteError(err, "load "+key)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(err, "decode %q", key)
	}

	return items, nil
}

// putCollection encodes and persists a whole collection under its key.
func putCollection[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}

	if err := store.Set(ctx, key, string(raw)); err != nil {
		return domainerrors.NewStorageExecuteError(err, "persist "+key)
	}

	return nil
}
