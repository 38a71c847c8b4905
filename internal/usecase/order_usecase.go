// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lokabumi/internal/domain/entity"
)

// OrderUsecase owns the locally stored order book. Orders originate
// upstream (service.OrderSource); in-app they only change status.
type OrderUsecase interface {
	// List returns every stored order.
	List(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus transitions an order to one of the closed-set statuses.
	// A value outside the set is rejected, never silently accepted.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// Sync pulls from the order source and stores orders not yet known
	// locally, returning how many were added. Stored orders are never
	// overwritten: local status transitions win.
	Sync(ctx context.Context) (int, error)
}
