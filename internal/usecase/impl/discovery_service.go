// Package impl contains the implementation of the application's business logic.
package impl

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"lokabumi/config"
	"lokabumi/internal/domain/entity"
	"lokabumi/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// earthRadiusKm is the sphere radius used for distance calculations.
const earthRadiusKm = 6371.0

// discoveryService implements the DiscoveryUsecase interface. It is pure:
// it works on the listing snapshot handed to it and never touches storage.
type discoveryService struct {
	maxRadiusKm float64
	logger      *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	maxRadiusKm := 0.0
	if params.Config != nil && params.Config.Discovery != nil {
		maxRadiusKm = params.Config.Discovery.MaxRadiusKm
	}

	return &discoveryService{
		maxRadiusKm: maxRadiusKm,
		logger:      params.Logger,
	}
}

// Search applies status, category, text and radius filters in that order,
// then sorts. The incoming slice is never mutated and relative order is
// preserved wherever the sort key ties.
func (srv *discoveryService) Search(listings []*entity.Listing, params usecase.DiscoveryParams) []usecase.DiscoveryResult {
	radiusKm := params.RadiusKm
	if srv.maxRadiusKm > 0 && radiusKm > srv.maxRadiusKm {
		radiusKm = srv.maxRadiusKm
	}

	needle := strings.ToLower(strings.TrimSpace(params.SearchText))

	results := make([]usecase.DiscoveryResult, 0, len(listings))
	for _, listing := range listings {
		if !matchesStatus(listing, params.Status) {
			continue
		}
		if !matchesCategory(listing, params.Category) {
			continue
		}
		if !matchesText(listing, needle) {
			continue
		}

		distanceKm := -1.0
		if params.Origin != nil && listing.Center != nil {
			distanceKm = haversineKm(*params.Origin, *listing.Center)
		}

		// The radius filter runs only when an origin anchors it; a radius
		// alone is ignored. Listings without coordinates drop out of a
		// radius search.
		if params.Origin != nil && radiusKm > 0 {
			if distanceKm < 0 || distanceKm > radiusKm {
				continue
			}
		}

		results = append(results, usecase.DiscoveryResult{Listing: listing, DistanceKm: distanceKm})
	}

	srv.sortResults(results, params)

	return results
}

func matchesStatus(listing *entity.Listing, status usecase.StatusFilter) bool {
	switch status {
	case usecase.StatusSale:
		return listing.IsForSale
	case usecase.StatusRent:
		return !listing.IsForSale
	default:
		return true
	}
}

// matchesCategory matches case-insensitively by substring, so "house"
// matches a "House" category label as the catalog UI presents it.
func matchesCategory(listing *entity.Listing, category entity.ListingType) bool {
	if category == "" {
		return true
	}

	return strings.Contains(strings.ToLower(string(listing.Type)), strings.ToLower(string(category)))
}

func matchesText(listing *entity.Listing, needle string) bool {
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(listing.Name), needle) ||
		strings.Contains(strings.ToLower(listing.Location), needle)
}

// sortResults orders results by the requested key. sort.SliceStable keeps
// equal-keyed listings in catalog order, so repeated searches over the same
// snapshot are deterministic.
func (srv *discoveryService) sortResults(results []usecase.DiscoveryResult, params usecase.DiscoveryParams) {
	switch params.Sort {
	case usecase.SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Listing.Price < results[j].Listing.Price
		})
	case usecase.SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Listing.Price > results[j].Listing.Price
		})
	case usecase.SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Listing.Rating > results[j].Listing.Rating
		})
	case usecase.SortDistance:
		if params.Origin == nil {
			srv.logger.Debug("Distance sort requested without origin; keeping catalog order")

			return
		}
		sort.SliceStable(results, func(i, j int) bool {
			// Unknown distances sink to the end.
			di, dj := results[i].DistanceKm, results[j].DistanceKm
			if di < 0 {
				return false
			}
			if dj < 0 {
				return true
			}

			return di < dj
		})
	}
}

// haversineKm returns the great-circle distance between two lon/lat points.
func haversineKm(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
