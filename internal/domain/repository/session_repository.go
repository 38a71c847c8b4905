// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lokabumi/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session record is persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository owns the single persisted active-session record.
// At most one session exists at a time; Save overwrites, Clear removes.
type SessionRepository interface {
	// Load retrieves the persisted session, or ErrSessionNotFound.
	Load(ctx context.Context) (*entity.Session, error)

	// Save overwrites the persisted session record.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes the persisted session record. Clearing an absent
	// session is not an error.
	Clear(ctx context.Context) error
}
