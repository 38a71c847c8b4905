// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lokabumi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateListingInput defines the data required to publish a listing.
// Name, location, area, price and at least one image are mandatory.
type CreateListingInput struct {
	Name        string             `validate:"required"`
	Location    string             `validate:"required"`
	AreaM2      float64            `validate:"required,gt=0"`
	Price       float64            `validate:"required,gt=0"`
	Images      []string           `validate:"required,min=1,dive,required"`
	Type        entity.ListingType `validate:"required"`
	IsForSale   bool
	Description string
	Facilities  []string
	Center      *orb.Point
	Boundary    []orb.Point
}

// UpdateListingInput carries a partial listing update; nil fields are left
// untouched. ID, owner and creation time are immutable.
type UpdateListingInput struct {
	Name        *string
	Location    *string
	Description *string
	Price       *float64
	AreaM2      *float64
	Rating      *float64
	Status      *entity.ListingStatus
	Type        *entity.ListingType
	IsForSale   *bool
	Images      []string
	Facilities  []string
	Center      *orb.Point
}

// ListingView is a listing joined with its owner's display name, resolved
// at read time from the registered-users table.
type ListingView struct {
	*entity.Listing
	OwnerName string
}

// CatalogUsecase owns the authoritative listing collection.
type CatalogUsecase interface {
	// List returns every listing with owner names resolved.
	List(ctx context.Context) ([]*ListingView, error)

	// Get returns one listing with its owner name resolved.
	Get(ctx context.Context, id string) (*ListingView, error)

	// Create validates input, assigns a time-ordered ID and persists the
	// grown collection in one write.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateListingInput) (*entity.Listing, error)

	// Update merges a partial update into the listing. Only the owner may
	// update; an unknown ID is an error, not a silent no-op.
	Update(ctx context.Context, ownerID uuid.UUID, id string, input *UpdateListingInput) (*entity.Listing, error)

	// Delete removes the listing, with the same ownership and not-found
	// rules as Update.
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
