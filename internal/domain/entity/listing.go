// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListingStatus is a closed set describing a listing's transaction state.
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusRented    ListingStatus = "rented"
)

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusAvailable, ListingStatusSold, ListingStatusRented:
		return true
	default:
		return false
	}
}

// ListingType is a closed set describing the property category.
type ListingType string

const (
	ListingTypeHouse     ListingType = "house"
	ListingTypeApartment ListingType = "apartment"
	ListingTypeShop      ListingType = "shop"
	ListingTypeLand      ListingType = "land"
)

// IsValid checks if the ListingType is a valid value.
func (t ListingType) IsValid() bool {
	switch t {
	case ListingTypeHouse, ListingTypeApartment, ListingTypeShop, ListingTypeLand:
		return true
	default:
		return false
	}
}

// Listing is a property/land record offered for sale or rent.
//
// The collection is owned by the catalog store and persisted as a single
// serialized array under a fixed storage key. IDs are time-ordered and
// immutable once assigned.
type Listing struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Location    string        `json:"location"` // Human-readable address/area.
	Boundary    []orb.Point   `json:"boundary,omitempty"`
	Center      *orb.Point    `json:"center,omitempty"`
	Images      []string      `json:"images"`
	Price       float64       `json:"price"`
	Status      ListingStatus `json:"status"`
	Type        ListingType   `json:"type"`
	AreaM2      float64       `json:"areaM2"`
	OwnerID     uuid.UUID     `json:"ownerId"` // Stable identity key; display name is resolved at read time.
	IsForSale   bool          `json:"isForSale"` // false means offered for rent.
	Rating      float64       `json:"rating,omitempty"`
	Facilities  []string      `json:"facilities,omitempty"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}
