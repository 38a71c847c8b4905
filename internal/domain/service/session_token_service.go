// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"lokabumi/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims is what a verified session token asserts about its holder.
type SessionClaims struct {
	UserID   uuid.UUID
	UserType entity.UserType
}

// SessionTokenService stamps and verifies the token stored inside the
// persisted session record. The stamp does not make the local store
// secure; it only lets bootstrap distinguish a record this device wrote
// from one that was tampered with or has expired.
type SessionTokenService interface {
	// Issue creates a signed token for the given identity.
	Issue(userID uuid.UUID, userType entity.UserType) (string, error)

	// Verify parses and validates a token, returning its claims.
	Verify(token string) (*SessionClaims, error)
}
