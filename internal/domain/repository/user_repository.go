// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lokabumi/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer handles
// specific outcomes without depending on storage-specific errors.
var (
	// ErrUserNotFound is returned when a registered user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when creating a credential whose email is
	// already present in the registered-users table.
	ErrEmailExists = errors.New("email already registered")
)

// UserRepository defines the standard operations for the registered-users
// table. The table holds Credential records (user + password hash); the
// session record never passes through here.
type UserRepository interface {
	// FindByID retrieves a single credential record by user ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error)

	// FindByEmail retrieves a single credential record by email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create appends a new credential record. Fails with ErrEmailExists if
	// the email is already registered.
	Create(ctx context.Context, cred *entity.Credential) error

	// Update replaces the record matching cred.ID. Fails with
	// ErrUserNotFound if the ID is not in the table.
	Update(ctx context.Context, cred *entity.Credential) error

	// List returns every registered credential record in insertion order.
	List(ctx context.Context) ([]*entity.Credential, error)
}
