package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRegistrationNotFound is returned when a registration cannot be located.
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrDuplicateRegistration is the distinguishable duplicate-key signal for
	// the (event_id, user_id) uniqueness constraint. The ledger treats it as
	// success, never as a user-facing error.
	ErrDuplicateRegistration = errors.New("registration already exists")

	// ErrRegistrationDecided is returned when a conditional status update finds
	// the registration no longer pending. Terminal states never transition.
	ErrRegistrationDecided = errors.New("registration already decided")
)

// RegistrationRepository defines the operations for the event/user relation records.
type RegistrationRepository interface {
	// FindByID retrieves a single registration.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error)

	// FindByEventAndUser retrieves the registration for an (event, user) pair.
	// Returns ErrRegistrationNotFound when the pair is unregistered.
	FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Registration, error)

	// Create persists a new registration. Returns ErrDuplicateRegistration when
	// the store's uniqueness constraint rejects a concurrent duplicate.
	Create(ctx context.Context, registration *entity.Registration) error

	// ListByUserID retrieves all registrations held by a user, any status.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error)

	// ListApplicationsByEventIDs retrieves registrations against exactly the
	// given event id set, joined with event name and applicant identity.
	ListApplicationsByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*entity.Application, error)

	// UpdateStatusFromPending transitions a registration to status only if it is
	// currently pending and belongs to an event in eventIDs. Returns
	// ErrRegistrationDecided when the row exists but is no longer pending, and
	// ErrRegistrationNotFound when no row matches the id and event scope.
	UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, eventIDs []uuid.UUID) error
}
