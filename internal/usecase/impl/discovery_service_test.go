package impl

import (
	"testing"

	"lokabumi/internal/domain/entity"
	"lokabumi/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultIDs(results []usecase.DiscoveryResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Listing.ID)
	}

	return ids
}

func TestDiscoveryService_Search_PriceAscending(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	listings := []*entity.Listing{
		testListing("1", ownerID, 200, nil),
		testListing("2", ownerID, 100, nil),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{Sort: usecase.SortPriceAsc})

	assert.Equal(t, []string{"2", "1"}, resultIDs(results))

	// The input slice is untouched.
	assert.Equal(t, "1", listings[0].ID)
}

func TestDiscoveryService_Search_PriceDescending(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	listings := []*entity.Listing{
		testListing("1", ownerID, 200, nil),
		testListing("2", ownerID, 100, nil),
		testListing("3", ownerID, 300, nil),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{Sort: usecase.SortPriceDesc})

	assert.Equal(t, []string{"3", "1", "2"}, resultIDs(results))
}

func TestDiscoveryService_Search_EqualPricesKeepCatalogOrder(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	listings := []*entity.Listing{
		testListing("a", ownerID, 100, nil),
		testListing("b", ownerID, 100, nil),
		testListing("c", ownerID, 100, nil),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{Sort: usecase.SortPriceAsc})

	assert.Equal(t, []string{"a", "b", "c"}, resultIDs(results))
}

func TestDiscoveryService_Search_TextMatchesNameAndLocation(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	sleman := testListing("1", ownerID, 100, nil)
	sleman.Name = "Kavling Premium"
	sleman.Location = "Sleman"
	bantul := testListing("2", ownerID, 100, nil)
	bantul.Name = "Sawah Produktif"
	bantul.Location = "Bantul"

	listings := []*entity.Listing{sleman, bantul}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{SearchText: "SLEMAN"})
	assert.Equal(t, []string{"1"}, resultIDs(results))

	results = env.discovery.Search(listings, usecase.DiscoveryParams{SearchText: "sawah"})
	assert.Equal(t, []string{"2"}, resultIDs(results))

	results = env.discovery.Search(listings, usecase.DiscoveryParams{SearchText: "jakarta"})
	assert.Empty(t, results)
}

func TestDiscoveryService_Search_StatusAndCategoryFilters(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	sale := testListing("sale", ownerID, 100, nil)
	sale.IsForSale = true
	rent := testListing("rent", ownerID, 100, nil)
	rent.IsForSale = false
	rent.Type = entity.ListingTypeHouse

	listings := []*entity.Listing{sale, rent}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{Status: usecase.StatusSale})
	assert.Equal(t, []string{"sale"}, resultIDs(results))

	results = env.discovery.Search(listings, usecase.DiscoveryParams{Status: usecase.StatusRent})
	assert.Equal(t, []string{"rent"}, resultIDs(results))

	results = env.discovery.Search(listings, usecase.DiscoveryParams{Category: entity.ListingTypeHouse})
	assert.Equal(t, []string{"rent"}, resultIDs(results))

	results = env.discovery.Search(listings, usecase.DiscoveryParams{})
	assert.Len(t, results, 2)
}

func TestDiscoveryService_Search_RadiusFilter(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	// Roughly 8.9 km apart on the ground.
	centerA := orb.Point{110.40, -7.80}
	centerB := orb.Point{110.33, -7.84}

	listings := []*entity.Listing{
		testListing("a", ownerID, 100, &centerA),
		testListing("b", ownerID, 100, &centerB),
	}

	within10 := env.discovery.Search(listings, usecase.DiscoveryParams{
		Origin:   &centerA,
		RadiusKm: 10,
	})
	assert.Equal(t, []string{"a", "b"}, resultIDs(within10))
	require.Len(t, within10, 2)
	assert.InDelta(t, 0, within10[0].DistanceKm, 0.001)
	assert.InDelta(t, 8.9, within10[1].DistanceKm, 0.3)

	within5 := env.discovery.Search(listings, usecase.DiscoveryParams{
		Origin:   &centerA,
		RadiusKm: 5,
	})
	assert.Equal(t, []string{"a"}, resultIDs(within5))
}

func TestDiscoveryService_Search_RadiusWithoutOriginIsIgnored(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	center := orb.Point{110.40, -7.80}

	listings := []*entity.Listing{
		testListing("located", ownerID, 100, &center),
		testListing("unlocated", ownerID, 100, nil),
	}

	// A radius with no origin cannot anchor a distance; everything stays.
	results := env.discovery.Search(listings, usecase.DiscoveryParams{RadiusKm: 10})

	assert.Equal(t, []string{"located", "unlocated"}, resultIDs(results))
}

func TestDiscoveryService_Search_RadiusDropsListingsWithoutCoordinates(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	origin := orb.Point{110.40, -7.80}

	listings := []*entity.Listing{
		testListing("located", ownerID, 100, &origin),
		testListing("unlocated", ownerID, 100, nil),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{Origin: &origin, RadiusKm: 10})

	assert.Equal(t, []string{"located"}, resultIDs(results))
}

func TestDiscoveryService_Search_RadiusClampedToConfiguredMax(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	origin := orb.Point{110.40, -7.80}
	// Jakarta is several hundred km away, beyond the 50 km configured cap.
	jakarta := orb.Point{106.85, -6.21}

	listings := []*entity.Listing{
		testListing("near", ownerID, 100, &origin),
		testListing("far", ownerID, 100, &jakarta),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{
		Origin:   &origin,
		RadiusKm: 100_000,
	})

	assert.Equal(t, []string{"near"}, resultIDs(results))
}

func TestDiscoveryService_Search_DistanceSort(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	origin := orb.Point{110.40, -7.80}
	near := orb.Point{110.41, -7.80}
	far := orb.Point{110.33, -7.84}

	listings := []*entity.Listing{
		testListing("far", ownerID, 100, &far),
		testListing("unlocated", ownerID, 100, nil),
		testListing("near", ownerID, 100, &near),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{
		Origin: &origin,
		Sort:   usecase.SortDistance,
	})

	// Nearest first; listings without coordinates sink to the end.
	assert.Equal(t, []string{"near", "far", "unlocated"}, resultIDs(results))
}

func TestDiscoveryService_Search_DistanceSortWithoutOriginKeepsOrder(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	listings := []*entity.Listing{
		testListing("1", ownerID, 300, nil),
		testListing("2", ownerID, 100, nil),
	}

	results := env.discovery.Search(listings, usecase.DiscoveryParams{Sort: usecase.SortDistance})

	assert.Equal(t, []string{"1", "2"}, resultIDs(results))
}

func TestDiscoveryService_Search_RatingSort(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	low := testListing("low", ownerID, 100, nil)
	low.Rating = 3.2
	high := testListing("high", ownerID, 100, nil)
	high.Rating = 4.8

	results := env.discovery.Search([]*entity.Listing{low, high}, usecase.DiscoveryParams{Sort: usecase.SortRating})

	assert.Equal(t, []string{"high", "low"}, resultIDs(results))
}

func TestDiscoveryService_Search_IsDeterministic(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()

	listings := []*entity.Listing{
		testListing("b", ownerID, 100, nil),
		testListing("a", ownerID, 100, nil),
		testListing("c", ownerID, 200, nil),
	}
	params := usecase.DiscoveryParams{Sort: usecase.SortPriceAsc}

	first := resultIDs(env.discovery.Search(listings, params))
	for range 5 {
		assert.Equal(t, first, resultIDs(env.discovery.Search(listings, params)))
	}
}
