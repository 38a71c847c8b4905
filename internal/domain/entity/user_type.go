// Package entity contains the core business objects of the project.
package entity

import "slices"

// UserType represents the role a user plays in the marketplace.
type UserType string

const (
	// UserTypeOwner indicates a property owner who manages listings.
	UserTypeOwner UserType = "owner"
	// UserTypeBuyer indicates a buyer/renter browsing the catalog.
	UserTypeBuyer UserType = "buyer"
	// UserTypeAdmin indicates the administrator. Admins are never stored in
	// the registered-users table; the identity is synthesized at login.
	UserTypeAdmin UserType = "admin"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeOwner, UserTypeBuyer, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// registrableUserTypes are the account types self-service registration may
// create. Admin accounts are never registrable.
var registrableUserTypes = UserTypes{UserTypeOwner, UserTypeBuyer}

// Registrable reports whether self-service registration may create an
// account of this type.
func (t UserType) Registrable() bool {
	return registrableUserTypes.Contains(t)
}

// UserTypes is a slice of UserType for convenience.
type UserTypes []UserType

// Contains checks if the slice contains a specific user type.
func (ts UserTypes) Contains(userType UserType) bool {
	return slices.Contains(ts, userType)
}
