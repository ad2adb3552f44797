// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record, representing a unique account.
// Name, email and role are owned by this record and never come from the profile.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	Name      string    // The user's display name.
	Role      Role      // The account role, fixed at signup.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the role-specific attributes layered onto a User.
// It is created lazily: a user has no profile row until onboarding completes
// or a profile save happens, and Onboarded stays false until then.
type Profile struct {
	UserID     uuid.UUID      // Foreign Key that links this profile to a core User entity.
	Onboarded  bool           // True once the onboarding workflow has been completed.
	Attributes map[string]any // Open-ended role-specific attributes (phone, interests, organization...).
	UpdatedAt  time.Time      // Timestamp of the last modification to this profile.
}

// UserView is the resolved, merged read model consumed by all role-gated logic.
// It is derived, never stored: name/email/role come from the User record,
// onboarded and the attribute bag come from the Profile record. When no profile
// row exists, Onboarded is false and Profile is an empty bag. A UserView is
// always fully resolved; partial merges are never exposed.
type UserView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	Onboarded bool
	Profile   map[string]any
}

// NewUserView merges a User with its (possibly absent) Profile.
func NewUserView(user *User, profile *Profile) *UserView {
	view := &UserView{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Profile: map[string]any{},
	}
	if profile != nil {
		view.Onboarded = profile.Onboarded
		if profile.Attributes != nil {
			view.Profile = profile.Attributes
		}
	}

	return view
}
