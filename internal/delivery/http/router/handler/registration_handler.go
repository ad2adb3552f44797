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

// RegistrationHandler covers the applicant side of event registrations.
type RegistrationHandler struct {
	registrations usecase.RegistrationUsecase
	logger        *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(registrations usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrations: registrations,
		logger:        logger,
	}
}

type registrationResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	Status    string    `json:"status"`
	AppliedAt string    `json:"applied_at"`
}

func newRegistrationResponse(registration *entity.Registration) registrationResponse {
	return registrationResponse{
		ID:        registration.ID,
		EventID:   registration.EventID,
		Status:    string(registration.Status),
		AppliedAt: registration.CreatedAt.Format(time.RFC3339),
	}
}

// Register applies the caller to an event. Repeated calls for the same event
// return the existing registration unchanged.
func (h *RegistrationHandler) Register(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	registration, err := h.registrations.Register(c.Request().Context(), userID, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRegistrationResponse(registration), "Registered successfully")
}

// ListRegistrations returns the caller's registrations with their statuses.
func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	registrations, err := h.registrations.ListRegistrations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]registrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		out = append(out, newRegistrationResponse(registration))
	}

	return response.Success(c, http.StatusOK, out, "Registrations retrieved successfully")
}

// TicketQR streams the PNG ticket for an approved registration held by the
// caller.
func (h *RegistrationHandler) TicketQR(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration id")
	}

	png, err := h.registrations.TicketQR(c.Request().Context(), userID, registrationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
