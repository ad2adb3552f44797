// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of account a user holds in the marketplace.
// Unlike a permission list, a role is fixed at signup and never changes.
type Role string

const (
	// RoleCreator indicates an artisan who lists products and applies to events.
	RoleCreator Role = "creator"
	// RoleInvestor indicates an investor browsing products and events.
	RoleInvestor Role = "investor"
	// RoleOrganizer indicates an event organizer who reviews applications.
	RoleOrganizer Role = "organizer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleInvestor, RoleOrganizer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RoleFromString converts a string to a Role, reporting whether it is valid.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
