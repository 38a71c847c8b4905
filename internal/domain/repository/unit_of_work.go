package repository

import "context"

// UnitOfWork groups several store writes into one all-or-nothing unit.
// The key-value substrate has no native transactions, so the
// implementation compensates: if fn returns an error, every key written
// inside the unit is restored to its prior value. A profile update is
// therefore visible in both the session record and the users table, or in
// neither.
type UnitOfWork interface {
	// Execute runs fn against repositories bound to the same unit. On
	// error the unit's writes are rolled back and the original error is
	// returned.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// unit of work.
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current unit.
	Users() UserRepository

	// Sessions returns a SessionRepository bound to the current unit.
	Sessions() SessionRepository

	// Listings returns a ListingRepository bound to the current unit.
	Listings() ListingRepository

	// Favorites returns a FavoriteRepository bound to the current unit.
	Favorites() FavoriteRepository

	// Orders returns an OrderRepository bound to the current unit.
	Orders() OrderRepository
}
