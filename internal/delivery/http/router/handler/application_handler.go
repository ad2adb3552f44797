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

// ApplicationHandler covers the organizer-side review of registrations.
type ApplicationHandler struct {
	applications usecase.ApplicationUsecase
	logger       *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(applications usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		logger:       logger,
	}
}

type applicationResponse struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	EventID        uuid.UUID `json:"event_id"`
	EventName      string    `json:"event_name"`
	ApplicantID    uuid.UUID `json:"applicant_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	Status         string    `json:"status"`
	AppliedAt      string    `json:"applied_at"`
}

func newApplicationResponse(application *entity.Application) applicationResponse {
	return applicationResponse{
		RegistrationID: application.RegistrationID,
		EventID:        application.EventID,
		EventName:      application.EventName,
		ApplicantID:    application.ApplicantID,
		ApplicantName:  application.ApplicantName,
		ApplicantEmail: application.ApplicantEmail,
		Status:         string(application.Status),
		AppliedAt:      application.AppliedAt.Format(time.RFC3339),
	}
}

// ListApplications returns every application against the organizer's events.
func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	applications, err := h.applications.ListApplications(c.Request().Context(), organizerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]applicationResponse, 0, len(applications))
	for _, application := range applications {
		out = append(out, newApplicationResponse(application))
	}

	return response.Success(c, http.StatusOK, out, "Applications retrieved successfully")
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// SetStatus decides a pending application. Decisions are final.
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration id")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Status must be approved or rejected")
	}

	registration, err := h.applications.SetStatus(c.Request().Context(), &usecase.SetStatusInput{
		OrganizerID:    organizerID,
		RegistrationID: registrationID,
		Status:         entity.RegistrationStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRegistrationResponse(registration), "Application decided successfully")
}

type checkInRequest struct {
	Code string `json:"code" validate:"required"`
}

// CheckInTicket verifies a scanned ticket QR against the organizer's events.
func (h *ApplicationHandler) CheckInTicket(c echo.Context) error {
	organizerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ticket input")
	}

	application, err := h.applications.CheckInTicket(c.Request().Context(), &usecase.CheckInTicketInput{
		OrganizerID: organizerID,
		TicketData:  req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newApplicationResponse(application), "Ticket checked in successfully")
}
