package kvrepo

import (
	"context"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"
)

// orderRepository implements repository.OrderRepository over the key-value
// store. Orders are one JSON array entry; there is no delete operation.
type orderRepository struct {
	store kv.Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kv.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return getCollection[*entity.Order](ctx, repo.store, keyOrders)
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := getCollection[*entity.Order](ctx, repo.store, keyOrders)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orders, err := getCollection[*entity.Order](ctx, repo.store, keyOrders)
	if err != nil {
		return err
	}

	orders = append(orders, order)

	return putCollection(ctx, repo.store, keyOrders, orders)
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orders, err := getCollection[*entity.Order](ctx, repo.store, keyOrders)
	if err != nil {
		return err
	}

	for i, existing := range orders {
		if existing.ID == order.ID {
			orders[i] = order

			return putCollection(ctx, repo.store, keyOrders, orders)
		}
	}

	return repository.ErrOrderNotFound
}
