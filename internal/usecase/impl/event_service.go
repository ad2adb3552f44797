package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
	now       func() time.Time
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEvents returns all events split into upcoming and past by calendar
// date. The split is computed at read time, so an event crosses over without
// any stored state changing.
func (srv *eventService) ListEvents(ctx context.Context) (*usecase.EventListOutput, error) {
	events, err := srv.eventRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list events", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list events")
	}

	now := srv.now()
	output := &usecase.EventListOutput{
		Upcoming: []*entity.Event{},
		Past:     []*entity.Event{},
	}
	for _, event := range events {
		if event.Upcoming(now) {
			output.Upcoming = append(output.Upcoming, event)
		} else {
			output.Past = append(output.Past, event)
		}
	}

	return output, nil
}

func (srv *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		srv.log(ctx).Error("Failed to load event", slog.Any("eventID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load event")
	}

	return event, nil
}

func (srv *eventService) ListOwnedEvents(ctx context.Context, organizerID uuid.UUID) ([]*entity.Event, error) {
	events, err := srv.eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list owned events", slog.Any("organizerID", organizerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list owned events")
	}

	return events, nil
}

func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	event := &entity.Event{
		Name:        input.Name,
		Category:    input.Category,
		Date:        input.Date,
		Description: input.Description,
		Location:    input.Location,
		OrganizerID: input.OrganizerID,
		Eligibility: input.Eligibility,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to create event", slog.Any("organizerID", input.OrganizerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.Any("organizerID", input.OrganizerID))

	return event, nil
}

// UpdateEvent edits an owned event. The load is scoped by a post-load owner
// comparison; a mismatch reads as not-found so foreign event ids stay
// unconfirmed.
func (srv *eventService) UpdateEvent(ctx context.Context, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		srv.log(ctx).Error("Failed to load event", slog.Any("eventID", input.EventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load event")
	}
	if event.OrganizerID != input.OrganizerID {
		return nil, domainerrors.ErrEventNotFound
	}

	event.Name = input.Name
	event.Category = input.Category
	event.Date = input.Date
	event.Description = input.Description
	event.Location = input.Location
	event.Eligibility = input.Eligibility

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to update event", slog.Any("eventID", input.EventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update event")
	}

	return event, nil
}

func (srv *eventService) DeleteEvent(ctx context.Context, id, organizerID uuid.UUID) error {
	if err := srv.eventRepo.DeleteOwned(ctx, id, organizerID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}
		srv.log(ctx).Error("Failed to delete event", slog.Any("eventID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Any("eventID", id), slog.Any("organizerID", organizerID))

	return nil
}
