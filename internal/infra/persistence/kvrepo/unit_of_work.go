package kvrepo

import (
	"context"
	"sync"

	"lokabumi/internal/domain/repository"
	apperrors "lokabumi/internal/errors"
	"lokabumi/internal/infra/persistence/kv"

	"github.com/pkg/errors"
)

// kvUnitOfWork implements repository.UnitOfWork with compensating writes.
// The key-value substrate has no transactions, so the unit records the
// prior value of every key written through it and restores those values
// if the callback fails.
type kvUnitOfWork struct {
	store kv.Store
}

// NewUnitOfWork is the constructor for kvUnitOfWork.
func NewUnitOfWork(store kv.Store) repository.UnitOfWork {
	return &kvUnitOfWork{store: store}
}

// Execute runs fn against repositories bound to one compensating unit.
func (uow *kvUnitOfWork) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	unit := &unitStore{base: uow.store, prior: make(map[string]*string)}
	factory := &kvRepositoryFactory{store: unit}

	// A panic inside the callback must not leave half of the unit's writes
	// behind; restore first, then let the caller's recovery see the panic.
	defer func() {
		if r := recover(); r != nil {
			unit.rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(factory); err != nil {
		if rbErr := unit.rollback(ctx); rbErr != nil {
			return errors.Wrapf(err, "unit rollback failed: %v (original error)", rbErr)
		}

		return err
	}

	return nil
}

// kvRepositoryFactory implements repository.RepositoryFactory, handing out
// repositories bound to the unit's recording store.
type kvRepositoryFactory struct {
	store kv.Store
}

// Users returns a UserRepository bound to the current unit.
func (f *kvRepositoryFactory) Users() repository.UserRepository {
	return NewUserRepository(f.store)
}

// Sessions returns a SessionRepository bound to the current unit.
func (f *kvRepositoryFactory) Sessions() repository.SessionRepository {
	return NewSessionRepository(f.store)
}

// Listings returns a ListingRepository bound to the current unit.
func (f *kvRepositoryFactory) Listings() repository.ListingRepository {
	return NewListingRepository(f.store)
}

// Favorites returns a FavoriteRepository bound to the current unit.
func (f *kvRepositoryFactory) Favorites() repository.FavoriteRepository {
	return NewFavoriteRepository(f.store)
}

// Orders returns an OrderRepository bound to the current unit.
func (f *kvRepositoryFactory) Orders() repository.OrderRepository {
	return NewOrderRepository(f.store)
}

// unitStore passes reads through and snapshots the prior value of every
// key before its first write inside the unit.
type unitStore struct {
	base  kv.Store
	mu    sync.Mutex
	prior map[string]*string // nil value = key was absent before the unit
}

func (u *unitStore) Get(ctx context.Context, key string) (string, error) {
	return u.base.Get(ctx, key)
}

func (u *unitStore) Set(ctx context.Context, key, value string) error {
	if err := u.snapshot(ctx, key); err != nil {
		return err
	}

	return u.base.Set(ctx, key, value)
}

func (u *unitStore) Remove(ctx context.Context, key string) error {
	if err := u.snapshot(ctx, key); err != nil {
		return err
	}

	return u.base.Remove(ctx, key)
}

func (u *unitStore) Keys(ctx context.Context) ([]string, error) {
	return u.base.Keys(ctx)
}

func (u *unitStore) snapshot(ctx context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, seen := u.prior[key]; seen {
		return nil
	}

	value, err := u.base.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			u.prior[key] = nil

			return nil
		}

		return errors.Wrapf(err, "snapshot key %q", key)
	}

	u.prior[key] = &value

	return nil
}

// rollback restores every touched key to its pre-unit value. Errors are
// joined so one failed restore does not hide the rest.
func (u *unitStore) rollback(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	var restoreErr error
	for key, prior := range u.prior {
		var err error
		if prior == nil {
			err = u.base.Remove(ctx, key)
		} else {
			err = u.base.Set(ctx, key, *prior)
		}
		if err != nil {
			restoreErr = apperrors.Join(restoreErr, errors.Wrapf(err, "restore key %q", key))
		}
	}
	u.prior = make(map[string]*string)

	return restoreErr
}
