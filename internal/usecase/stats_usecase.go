// Package usecase contains the application-specific business rules.
package usecase

import "context"

// StatsOverview aggregates the stored collections for the dashboard.
type StatsOverview struct {
	TotalListings  int
	TotalFavorites int
	TotalOrders    int
	// TotalIncome sums the totals of completed orders.
	TotalIncome float64
}

// StatsUsecase computes read-only aggregates over the stores.
type StatsUsecase interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}
