// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lokabumi/internal/domain/entity"
)

// FavoriteRepository owns the persisted bookmark snapshots. The collection
// is always replaced wholesale; membership logic lives in the usecase layer.
type FavoriteRepository interface {
	// FindAll returns every favorite snapshot in insertion order.
	FindAll(ctx context.Context) ([]*entity.Favorite, error)

	// ReplaceAll persists the given collection as the new favorites array.
	ReplaceAll(ctx context.Context, favorites []*entity.Favorite) error
}
