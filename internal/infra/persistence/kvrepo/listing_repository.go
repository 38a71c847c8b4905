package kvrepo

import (
	"context"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/repository"
	"lokabumi/internal/infra/persistence/kv"
)

// listingRepository implements repository.ListingRepository over the
// key-value store. The catalog is one JSON array entry.
type listingRepository struct {
	store kv.Store
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(store kv.Store) repository.ListingRepository {
	return &listingRepository{store: store}
}

func (repo *listingRepository) FindAll(ctx context.Context) ([]*entity.Listing, error) {
	return getCollection[*entity.Listing](ctx, repo.store, keyListings)
}

func (repo *listingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	listings, err := getCollection[*entity.Listing](ctx, repo.store, keyListings)
	if err != nil {
		return nil, err
	}

	for _, listing := range listings {
		if listing.ID == id {
			return listing, nil
		}
	}

	return nil, repository.ErrListingNotFound
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listings, err := getCollection[*entity.Listing](ctx, repo.store, keyListings)
	if err != nil {
		return err
	}

	listings = append(listings, listing)

	return putCollection(ctx, repo.store, keyListings, listings)
}

func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listings, err := getCollection[*entity.Listing](ctx, repo.store, keyListings)
	if err != nil {
		return err
	}

	for i, existing := range listings {
		if existing.ID == listing.ID {
			listings[i] = listing

			return putCollection(ctx, repo.store, keyListings, listings)
		}
	}

	return repository.ErrListingNotFound
}

func (repo *listingRepository) Delete(ctx context.Context, id string) error {
	listings, err := getCollection[*entity.Listing](ctx, repo.store, keyListings)
	if err != nil {
		return err
	}

	for i, existing := range listings {
		if existing.ID == id {
			listings = append(listings[:i], listings[i+1:]...)

			return putCollection(ctx, repo.store, keyListings, listings)
		}
	}

	return repository.ErrListingNotFound
}
