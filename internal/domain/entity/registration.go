// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the review state of a registration.
// Transitions are monotonic: pending is the only initial state, and
// approved/rejected are terminal.
type RegistrationStatus string

const (
	// RegistrationPending is the initial state of every registration.
	RegistrationPending RegistrationStatus = "pending"
	// RegistrationApproved is a terminal state set by the owning organizer.
	RegistrationApproved RegistrationStatus = "approved"
	// RegistrationRejected is a terminal state set by the owning organizer.
	RegistrationRejected RegistrationStatus = "rejected"
)

// String returns the string representation of the status.
func (s RegistrationStatus) String() string {
	return string(s)
}

// Terminal reports whether no further transition is allowed from this status.
func (s RegistrationStatus) Terminal() bool {
	return s == RegistrationApproved || s == RegistrationRejected
}

// IsValid checks if the status is a valid value.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	default:
		return false
	}
}

// Registration links a user's interest to an Event. It is a relation record
// owned by neither side: created once, status-updated at most once. The store
// enforces uniqueness on (EventID, UserID).
type Registration struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Status    RegistrationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Application is the organizer-facing read model of a Registration: the
// relation row joined with the event name and the applicant's display identity.
type Application struct {
	RegistrationID uuid.UUID
	EventID        uuid.UUID
	EventName      string
	ApplicantID    uuid.UUID
	ApplicantName  string
	ApplicantEmail string
	Status         RegistrationStatus
	AppliedAt      time.Time
}
