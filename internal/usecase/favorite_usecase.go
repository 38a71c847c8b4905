// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lokabumi/internal/domain/entity"
)

// FavoriteUsecase owns the device's bookmark snapshots. Snapshots never
// track later catalog edits; toggling twice restores the previous
// membership.
type FavoriteUsecase interface {
	// Toggle removes the favorite when item.ID is already bookmarked,
	// otherwise stores item as a snapshot. It reports whether the item is
	// bookmarked after the call.
	Toggle(ctx context.Context, item entity.Favorite) (bool, error)

	// IsFavorite reports membership by listing ID.
	IsFavorite(ctx context.Context, id string) (bool, error)

	// List returns every snapshot in bookmark order.
	List(ctx context.Context) ([]*entity.Favorite, error)
}
