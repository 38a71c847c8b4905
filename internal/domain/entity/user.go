// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Gender is a closed set of profile gender values.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid checks if the Gender is a valid value. The empty string is
// accepted because the field is optional on registration.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, "":
		return true
	default:
		return false
	}
}

// User is the core identity in the system. It is what the active session
// holds and what store operations return; it never carries credential
// material.
type User struct {
	ID        uuid.UUID  `json:"id"`       // Immutable, assigned at registration.
	Email     string     `json:"email"`    // Natural key for login, unique across the users table.
	FullName  string     `json:"fullName"` // Display name.
	Phone     string     `json:"phone"`
	UserType  UserType   `json:"userType"`
	Address   string     `json:"address,omitempty"`
	Photo     string     `json:"photo,omitempty"` // Opaque image-data URI from the picker.
	Gender    Gender     `json:"gender,omitempty"`
	DOB       string     `json:"dob,omitempty"`
	Location  *orb.Point `json:"location,omitempty"` // Last known device coordinate, if shared.
	CreatedAt time.Time  `json:"createdAt"`
}

// Credential is a registered-users table record: the user plus their
// password hash. It exists only inside the users table and must never be
// copied into the session record.
type Credential struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Session is the persisted active-session record. Token is an HS256 stamp
// issued at login/registration; a record whose token no longer verifies is
// treated as guest at bootstrap.
type Session struct {
	User    User      `json:"user"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}
