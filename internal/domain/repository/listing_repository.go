// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lokabumi/internal/domain/entity"
)

// ErrListingNotFound is returned when a listing ID is not in the catalog.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the operations over the listings collection.
// Every mutation rewrites the whole persisted array in a single write, so
// callers never observe a partially persisted catalog.
type ListingRepository interface {
	// FindAll returns every listing in insertion order. An absent storage
	// key yields an empty slice.
	FindAll(ctx context.Context) ([]*entity.Listing, error)

	// FindByID retrieves a single listing, or ErrListingNotFound.
	FindByID(ctx context.Context, id string) (*entity.Listing, error)

	// Create appends a new listing and persists the collection.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update replaces the listing matching listing.ID, or returns
	// ErrListingNotFound.
	Update(ctx context.Context, listing *entity.Listing) error

	// Delete removes the listing by ID, or returns ErrListingNotFound.
	Delete(ctx context.Context, id string) error
}
