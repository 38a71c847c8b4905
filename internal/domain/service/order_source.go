// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"

	"lokabumi/internal/domain/entity"
)

// OrderSource is the collaborator that originates orders. The app never
// creates orders itself; it syncs whatever the source produces into the
// local order store. In this repository the source is a static simulation
// of the upstream marketplace backend.
type OrderSource interface {
	// Pull returns the orders currently known upstream.
	Pull(ctx context.Context) ([]*entity.Order, error)
}
