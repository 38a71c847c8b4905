// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"lokabumi/internal/domain/entity"
	domainerrors "lokabumi/internal/domain/errors"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/domain/service"
	"lokabumi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	source    service.OrderSource
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Source    service.OrderSource
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		source:    params.Source,
		logger:    params.Logger,
	}
}

// List returns every stored order.
func (srv *orderService) List(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	return orders, nil
}

// UpdateStatus transitions an order to one of the closed-set statuses.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, string(status))
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	order.Status = status
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.logger.Info("Order status updated", slog.String("orderID", orderID), slog.Any("status", status))

	return order, nil
}

// Sync pulls from the order source and stores orders not yet known locally.
// Stored orders keep their local status; the upstream copy never wins.
func (srv *orderService) Sync(ctx context.Context) (int, error) {
	upstream, err := srv.source.Pull(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to pull from order source")
	}

	stored, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load orders")
	}

	known := make(map[string]struct{}, len(stored))
	for _, order := range stored {
		known[order.ID] = struct{}{}
	}

	added := 0
	for _, order := range upstream {
		if _, ok := known[order.ID]; ok {
			continue
		}
		if !order.Status.IsValid() {
			srv.logger.Warn("Skipping upstream order with unknown status", slog.String("orderID", order.ID), slog.Any("status", order.Status))

			continue
		}

		if err := srv.orderRepo.Create(ctx, order); err != nil {
			return added, errors.Wrap(err, "failed to store synced order")
		}
		known[order.ID] = struct{}{}
		added++
	}

	srv.logger.Info("Order sync completed", slog.Int("added", added), slog.Int("upstream", len(upstream)))

	return added, nil
}
