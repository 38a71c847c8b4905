// Package usecase contains the application-specific business rules.
package usecase

import (
	"lokabumi/internal/domain/entity"

	"github.com/paulmach/orb"
)

// StatusFilter narrows listings by their sale/rent flag.
type StatusFilter string

const (
	// StatusAll keeps every listing.
	StatusAll StatusFilter = "all"
	// StatusSale keeps listings offered for sale.
	StatusSale StatusFilter = "sale"
	// StatusRent keeps listings offered for rent.
	StatusRent StatusFilter = "rent"
)

// SortKey selects the ordering of a discovery result.
type SortKey string

const (
	// SortNone preserves the incoming order.
	SortNone SortKey = "none"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortKey = "priceAsc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortKey = "priceDesc"
	// SortRating orders by rating, highest first.
	SortRating SortKey = "rating"
	// SortDistance orders by distance from the origin, nearest first.
	// It requires an origin; without one it degrades to SortNone.
	SortDistance SortKey = "distance"
)

// DiscoveryParams describes one search over a listing snapshot. The zero
// value matches everything in incoming order.
type DiscoveryParams struct {
	// SearchText matches case-insensitively against name and location.
	SearchText string
	// Category keeps only listings of this type when non-empty.
	Category entity.ListingType
	// Status narrows by the sale/rent flag; empty means StatusAll.
	Status StatusFilter
	// Origin anchors radius filtering and distance sorting.
	Origin *orb.Point
	// RadiusKm keeps listings within this distance of Origin. Zero or
	// negative disables the radius filter, as does a missing Origin.
	RadiusKm float64
	// Sort selects the result ordering; empty means SortNone.
	Sort SortKey
}

// DiscoveryResult is one matched listing with its distance from the
// origin. DistanceKm is negative when no origin was given or the listing
// has no coordinates.
type DiscoveryResult struct {
	Listing    *entity.Listing
	DistanceKm float64
}

// DiscoveryUsecase filters and orders listing snapshots. It is a pure
// function of its inputs: it never touches storage and never mutates the
// given slice.
type DiscoveryUsecase interface {
	Search(listings []*entity.Listing, params DiscoveryParams) []DiscoveryResult
}
