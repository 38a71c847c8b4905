// Package seed provides demo fixtures: the sample catalog and orders the
// app ships with so a fresh install has something to browse. Content
// mirrors the original demo dataset around Yogyakarta.
package seed

import (
	"time"

	"lokabumi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

func point(lon, lat float64) *orb.Point {
	p := orb.Point{lon, lat}

	return &p
}

// Listings returns the demo catalog, all owned by ownerID.
func Listings(ownerID uuid.UUID) []*entity.Listing {
	createdAt := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)

	return []*entity.Listing{
		{
			ID:          "2RzqX1fJ4yTm8wA0pQvLsEabCd1",
			Name:        "Sawah Produktif Sleman",
			Location:    "Sleman, Yogyakarta",
			Center:      point(110.40, -7.80),
			Images:      []string{"https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=800"},
			Price:       250_000_000,
			Status:      entity.ListingStatusAvailable,
			Type:        entity.ListingTypeLand,
			AreaM2:      1200,
			OwnerID:     ownerID,
			IsForSale:   true,
			Rating:      4.6,
			Facilities:  []string{"irigasi", "akses jalan"},
			Description: "Lahan sawah produktif dengan irigasi teknis.",
			CreatedAt:   createdAt,
		},
		{
			ID:          "2RzqX5kPb2nH7cD9rYtMwFghIj2",
			Name:        "Rumah Joglo Bantul",
			Location:    "Bantul, Yogyakarta",
			Center:      point(110.33, -7.84),
			Images:      []string{"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?w=800"},
			Price:       8_500_000,
			Status:      entity.ListingStatusAvailable,
			Type:        entity.ListingTypeHouse,
			AreaM2:      240,
			OwnerID:     ownerID,
			IsForSale:   false,
			Rating:      4.8,
			Facilities:  []string{"listrik", "sumur"},
			Description: "Rumah joglo siap huni, disewakan tahunan.",
			CreatedAt:   createdAt,
		},
		{
			ID:          "2RzqX9sWd6vK3eB5tUoNxGklMn3",
			Name:        "Kios Malioboro",
			Location:    "Kota Yogyakarta",
			Center:      point(110.3658, -7.7925),
			Images:      []string{"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800"},
			Price:       15_000_000,
			Status:      entity.ListingStatusRented,
			Type:        entity.ListingTypeShop,
			AreaM2:      36,
			OwnerID:     ownerID,
			IsForSale:   false,
			Rating:      4.2,
			Description: "Kios strategis di kawasan Malioboro.",
			CreatedAt:   createdAt,
		},
	}
}

// Orders returns the demo order book, as the upstream marketplace backend
// would report it.
func Orders() []*entity.Order {
	return []*entity.Order{
		{
			ID:        "ORD-2025-0001",
			BuyerName: "Budi Santoso",
			Items: []entity.OrderItem{
				{ProductName: "Sawah Produktif Sleman", Quantity: 1, Price: 250_000_000},
			},
			Total:     250_000_000,
			Status:    entity.OrderStatusPending,
			CreatedAt: time.Date(2025, time.April, 2, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:        "ORD-2025-0002",
			BuyerName: "Siti Rahayu",
			Items: []entity.OrderItem{
				{ProductName: "Rumah Joglo Bantul", Quantity: 1, Price: 8_500_000},
			},
			Total:     8_500_000,
			Status:    entity.OrderStatusCompleted,
			CreatedAt: time.Date(2025, time.April, 7, 10, 15, 0, 0, time.UTC),
		},
	}
}
