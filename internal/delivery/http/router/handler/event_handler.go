package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for the public event surface and the
// organizer's event management.
type EventHandler struct {
	events        usecase.EventUsecase
	registrations usecase.RegistrationUsecase
	logger        *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(events usecase.EventUsecase, registrations usecase.RegistrationUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		events:        events,
		registrations: registrations,
		logger:        logger,
	}
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Eligibility string    `json:"eligibility"`
	Registered  bool      `json:"registered"`
}

func newEventResponse(event *entity.Event, registered bool) eventResponse {
	return eventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Category:    event.Category,
		Date:        event.Date.Format(time.RFC3339),
		Description: event.Description,
		Location:    event.Location,
		Eligibility: event.Eligibility,
		Registered:  registered,
	}
}

type eventListResponse struct {
	Upcoming []eventResponse `json:"upcoming"`
	Past     []eventResponse `json:"past"`
}

// ListEvents returns all events split into upcoming and past, with each event
// flagged when the caller already holds a registration for it.
func (h *EventHandler) ListEvents(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.events.ListEvents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	registeredIDs, err := h.registrations.ListRegisteredEventIDs(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	registered := make(map[uuid.UUID]struct{}, len(registeredIDs))
	for _, id := range registeredIDs {
		registered[id] = struct{}{}
	}

	out := eventListResponse{
		Upcoming: make([]eventResponse, 0, len(output.Upcoming)),
		Past:     make([]eventResponse, 0, len(output.Past)),
	}
	for _, event := range output.Upcoming {
		_, isRegistered := registered[event.ID]
		out.Upcoming = append(out.Upcoming, newEventResponse(event, isRegistered))
	}
	for _, event := range output.Past {
		_, isRegistered := registered[event.ID]
		out.Past = append(out.Past, newEventResponse(event, isRegistered))
	}

	return response.Success(c, http.StatusOK, out, "Events retrieved successfully")
}

// GetEvent returns a single event.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := h.events.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEventResponse(event, false), "Event retrieved successfully")
}

// ListOwnedEvents returns the organizer's own events.
func (h *EventHandler) ListOwnedEvents(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	events, err := h.events.ListOwnedEvents(c.Request().Context(), organizerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, newEventResponse(event, false))
	}

	return response.Success(c, http.StatusOK, out, "Events retrieved successfully")
}

type eventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" validate:"required"`
	Eligibility string    `json:"eligibility"`
}

// CreateEvent creates an event owned by the calling organizer.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.events.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		OrganizerID: organizerID,
		Name:        req.Name,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		Location:    req.Location,
		Eligibility: req.Eligibility,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newEventResponse(event, false), "Event created successfully")
}

// UpdateEvent edits an event owned by the calling organizer.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.events.UpdateEvent(c.Request().Context(), &usecase.UpdateEventInput{
		EventID:     eventID,
		OrganizerID: organizerID,
		Name:        req.Name,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		Location:    req.Location,
		Eligibility: req.Eligibility,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEventResponse(event, false), "Event updated successfully")
}

// DeleteEvent removes an event owned by the calling organizer.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	if err := h.events.DeleteEvent(c.Request().Context(), eventID, organizerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}
