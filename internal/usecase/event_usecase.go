package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput defines the data an organizer supplies for a new event.
type CreateEventInput struct {
	OrganizerID uuid.UUID
	Name        string
	Category    string
	Date        time.Time
	Description string
	Location    string
	Eligibility string
}

// UpdateEventInput defines the data for editing an owned event.
type UpdateEventInput struct {
	EventID     uuid.UUID
	OrganizerID uuid.UUID
	Name        string
	Category    string
	Date        time.Time
	Description string
	Location    string
	Eligibility string
}

// EventListOutput splits the public listing into upcoming and past by event
// date, computed at read time.
type EventListOutput struct {
	Upcoming []*entity.Event
	Past     []*entity.Event
}

// EventUsecase covers the public event surface and the organizer's CRUD over
// owned events.
type EventUsecase interface {
	ListEvents(ctx context.Context) (*EventListOutput, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListOwnedEvents(ctx context.Context, organizerID uuid.UUID) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id, organizerID uuid.UUID) error
}
