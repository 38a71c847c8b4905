// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lokabumi/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order ID is not stored.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines operations over the stored orders collection.
// Orders are created by syncing from an external source and mutated only
// through status updates; there is no delete.
type OrderRepository interface {
	// FindAll returns every order in insertion order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves a single order, or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Create appends a new order and persists the collection.
	Create(ctx context.Context, order *entity.Order) error

	// Update replaces the order matching order.ID, or returns
	// ErrOrderNotFound.
	Update(ctx context.Context, order *entity.Order) error
}
