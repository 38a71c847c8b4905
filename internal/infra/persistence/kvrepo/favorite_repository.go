package kvrepo

import (
	"context"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"
)

// favoriteRepository implements repository.FavoriteRepository. Favorites
// are snapshots, so the repository only loads and replaces the array.
type favoriteRepository struct {
	store kv.Store
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(store kv.Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (repo *favoriteRepository) FindAll(ctx context.Context) ([]*entity.Favorite, error) {
	return getCollection[*entity.Favorite](ctx, repo.store, keyFavorites)
}

func (repo *favoriteRepository) ReplaceAll(ctx context.Context, favorites []*entity.Favorite) error {
	return putCollection(ctx, repo.store, keyFavorites, favorites)
}
