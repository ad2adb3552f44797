package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// SetStatusInput identifies the registration being decided and the organizer
// acting on it. Ownership of the underlying event is part of the update
// filter, never a post-hoc check.
type SetStatusInput struct {
	OrganizerID    uuid.UUID
	RegistrationID uuid.UUID
	Status         entity.RegistrationStatus
}

// CheckInTicketInput carries a scanned ticket payload and the organizer
// presenting the scanner.
type CheckInTicketInput struct {
	OrganizerID uuid.UUID
	TicketData  string
}

// ApplicationUsecase is the organizer-side review workflow over registrations.
type ApplicationUsecase interface {
	// ListApplications returns all registrations against the organizer's own
	// events, joined with event name and applicant identity. Events owned by
	// other organizers never appear.
	ListApplications(ctx context.Context, organizerID uuid.UUID) ([]*entity.Application, error)

	// SetStatus transitions a pending registration to approved or rejected.
	// Terminal registrations never transition again. The updated application
	// is returned so callers can refresh their lists in place.
	SetStatus(ctx context.Context, input *SetStatusInput) (*entity.Registration, error)

	// CheckInTicket verifies a scanned ticket QR at the door: the payload must
	// decode to an approved registration for one of the organizer's own
	// events. Tickets for other organizers' events read as not-found.
	CheckInTicket(ctx context.Context, input *CheckInTicketInput) (*entity.Application, error)
}
