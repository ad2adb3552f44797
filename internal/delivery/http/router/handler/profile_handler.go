package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/routing"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and navigation handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type userViewResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Onboarded bool           `json:"onboarded"`
	Profile   map[string]any `json:"profile"`
}

func newUserViewResponse(view *entity.UserView) userViewResponse {
	return userViewResponse{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		Role:      view.Role.String(),
		Onboarded: view.Onboarded,
		Profile:   view.Profile,
	}
}

// GetProfile returns the fully resolved user view for the caller.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	view, err := h.uc.Resolve(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViewResponse(view), "Profile retrieved successfully")
}

type profileRequest struct {
	Attributes map[string]any `json:"attributes"`
}

// CompleteOnboarding marks the caller onboarded with the supplied attributes.
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}

	view, err := h.uc.CompleteOnboarding(c.Request().Context(), &usecase.CompleteOnboardingInput{
		UserID:     userID,
		Attributes: req.Attributes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViewResponse(view), "Onboarding completed successfully")
}

// SaveProfile replaces the caller's profile attribute bag.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	view, err := h.uc.SaveProfile(c.Request().Context(), &usecase.CompleteOnboardingInput{
		UserID:     userID,
		Attributes: req.Attributes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViewResponse(view), "Profile saved successfully")
}

type navigationResponse struct {
	Screen string `json:"screen"`
	Path   string `json:"path"`
}

// Navigation resolves the screen the caller may reach for a requested path.
// The endpoint answers for every session state: anonymous callers get the
// unauthenticated set, authenticated ones their role's set behind the
// onboarding gate.
func (h *ProfileHandler) Navigation(c echo.Context) error {
	requestedPath := c.QueryParam("path")

	state := usecase.SessionStateUnauthenticated
	var view *entity.UserView

	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		resolved, err := h.uc.Resolve(c.Request().Context(), userID)
		if err != nil {
			// Resolution failure collapses to no session rather than an error
			// page; the cause stays in the logs.
			h.logger.Warn("Navigation resolution failed", slog.Any("userID", userID), slog.Any("error", err))
		} else {
			state = usecase.SessionStateAuthenticated
			view = resolved
		}
	}

	decision := routing.Resolve(state, view, requestedPath)

	return response.Success(c, http.StatusOK, navigationResponse{
		Screen: string(decision.Screen),
		Path:   decision.Path,
	}, "Navigation resolved successfully")
}
