package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event cannot be located.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the operations for event persistence.
type EventRepository interface {
	// FindByID retrieves a single event.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// List retrieves all events, newest date first.
	List(ctx context.Context) ([]*entity.Event, error)

	// ListByOrganizerID retrieves the events owned by an organizer.
	ListByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]*entity.Event, error)

	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// Update modifies an existing event. The caller is responsible for
	// having already scoped the event to its owner.
	Update(ctx context.Context, event *entity.Event) error

	// DeleteOwned removes an event only when it is owned by organizerID.
	// Returns ErrEventNotFound when no such owned event exists.
	DeleteOwned(ctx context.Context, id, organizerID uuid.UUID) error
}
