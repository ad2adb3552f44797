package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// RegistrationUsecase is the ledger of event registrations held by users.
type RegistrationUsecase interface {
	// Register creates a pending registration for the (event, user) pair.
	// The operation is idempotent: an existing registration, or a concurrent
	// duplicate detected by the store, is reported as success.
	Register(ctx context.Context, userID, eventID uuid.UUID) (*entity.Registration, error)

	// ListRegisteredEventIDs returns the set of event ids the user holds any
	// registration for, regardless of status.
	ListRegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListRegistrations returns the user's registrations with their statuses.
	ListRegistrations(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error)

	// TicketQR renders the QR code ticket for one of the user's approved
	// registrations.
	TicketQR(ctx context.Context, userID, registrationID uuid.UUID) ([]byte, error)
}
