// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	listingRepo  repository.ListingRepository
	favoriteRepo repository.FavoriteRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	FavoriteRepo repository.FavoriteRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		listingRepo:  params.ListingRepo,
		favoriteRepo: params.FavoriteRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

// Overview aggregates the stored collections for the dashboard. Income
// counts completed orders only.
func (srv *statsService) Overview(ctx context.Context) (*usecase.StatsOverview, error) {
	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listings")
	}

	favorites, err := srv.favoriteRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	overview := &usecase.StatsOverview{
		TotalListings:  len(listings),
		TotalFavorites: len(favorites),
		TotalOrders:    len(orders),
	}
	for _, order := range orders {
		if order.Status == entity.OrderStatusCompleted {
			overview.TotalIncome += order.Total
		}
	}

	return overview, nil
}
