package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteOnboardingInput carries the attribute payload collected by the
// onboarding workflow.
type CompleteOnboardingInput struct {
	UserID     uuid.UUID
	Attributes map[string]any
}

// ProfileUsecase resolves identities into fully merged user views and drives
// the onboarding transition.
type ProfileUsecase interface {
	// Resolve merges the user row and the (possibly absent) profile row into a
	// UserView. A missing profile row resolves onboarded=false with an empty
	// attribute bag; any other failure yields no view at all.
	Resolve(ctx context.Context, userID uuid.UUID) (*entity.UserView, error)

	// CompleteOnboarding upserts the profile row with onboarded=true and the
	// supplied payload, returning the updated view so callers observe the
	// transition without a re-fetch.
	CompleteOnboarding(ctx context.Context, input *CompleteOnboardingInput) (*entity.UserView, error)

	// SaveProfile replaces the attribute bag without touching the onboarded
	// flag once set. Saving a non-empty payload on a fresh profile behaves
	// like onboarding.
	SaveProfile(ctx context.Context, input *CompleteOnboardingInput) (*entity.UserView, error)
}
