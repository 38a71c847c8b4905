// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

// Toggle flips the bookmark membership of item.ID and reports the state
// after the call.
func (srv *favoriteService) Toggle(ctx context.Context, item entity.Favorite) (bool, error) {
	if item.ID == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("favorite requires a listing ID")
	}

	favorites, err := srv.favoriteRepo.FindAll(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load favorites")
	}

	kept := make([]*entity.Favorite, 0, len(favorites)+1)
	removed := false
	for _, favorite := range favorites {
		if favorite.ID == item.ID {
			removed = true

			continue
		}
		kept = append(kept, favorite)
	}

	bookmarked := false
	if !removed {
		snapshot := item
		kept = append(kept, &snapshot)
		bookmarked = true
	}

	if err := srv.favoriteRepo.ReplaceAll(ctx, kept); err != nil {
		return false, errors.Wrap(err, "failed to persist favorites")
	}

	srv.logger.Debug("Favorite toggled", slog.String("listingID", item.ID), slog.Bool("bookmarked", bookmarked))

	return bookmarked, nil
}

// IsFavorite reports membership by listing ID.
func (srv *favoriteService) IsFavorite(ctx context.Context, id string) (bool, error) {
	favorites, err := srv.favoriteRepo.FindAll(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load favorites")
	}

	for _, favorite := range favorites {
		if favorite.ID == id {
			return true, nil
		}
	}

	return false, nil
}

// List returns every snapshot in bookmark order.
func (srv *favoriteService) List(ctx context.Context) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	return favorites, nil
}
