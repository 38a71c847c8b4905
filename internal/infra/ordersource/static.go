// Package ordersource provides OrderSource implementations. The app has
// no real backend; orders come from a simulated upstream feed.
package ordersource

import (
	"context"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/service"
	"lokabumi/internal/infra/seed"
)

// staticSource serves a fixed order feed, standing in for the marketplace
// backend the production app would poll.
type staticSource struct {
	orders []*entity.Order
}

// NewStaticSource is the constructor for staticSource. With no explicit
// orders it serves the seed fixtures.
func NewStaticSource(orders ...*entity.Order) service.OrderSource {
	if len(orders) == 0 {
		orders = seed.Orders()
	}

	return &staticSource{orders: orders}
}

// Pull returns copies of the feed so callers cannot mutate the source.
func (s *staticSource) Pull(ctx context.Context) ([]*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*entity.Order, 0, len(s.orders))
	for _, order := range s.orders {
		copied := *order
		out = append(out, &copied)
	}

	return out, nil
}
