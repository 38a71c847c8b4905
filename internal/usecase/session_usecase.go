// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lokabumi/internal/domain/entity"

	"github.com/paulmach/orb"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Only owner and buyer accounts can be self-registered.
type RegisterInput struct {
	Email    string          `validate:"required,email"`
	Password string          `validate:"required,min=8"`
	FullName string          `validate:"required"`
	Phone    string          `validate:"required"`
	UserType entity.UserType `validate:"required"`
	Address  string
	Gender   entity.Gender
	DOB      string
	Photo    string
	Location *orb.Point
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UpdateProfileInput carries a partial profile update; nil fields are left
// untouched. Email, user type and ID are immutable and deliberately absent.
type UpdateProfileInput struct {
	FullName *string
	Phone    *string
	Address  *string
	Photo    *string
	Gender   *entity.Gender
	DOB      *string
	Location *orb.Point
}

// --- Output DTOs ---

// AuthOutput returns the identity activated by a register/login call.
type AuthOutput struct {
	User *entity.User
}

// SessionUsecase owns the lifecycle of the active session and the
// registered-users table. At any point there is exactly zero or one
// current identity.
type SessionUsecase interface {
	// Register creates an account, activates it as the current session and
	// returns the created user (never credential material).
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates against the configured admin credentials first,
	// then the registered-users table.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout clears the persisted session and the in-memory identity.
	// Logging out as a guest is a no-op beyond clearing storage.
	Logout(ctx context.Context) error

	// UpdateProfile merges a partial update into the current identity and
	// into its users-table record as one unit.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// Restore loads the persisted session at startup. A missing, tampered
	// or expired record yields a guest (nil user), not an error.
	Restore(ctx context.Context) (*entity.User, error)

	// Current returns the active identity, or nil for guests.
	Current() *entity.User
}
