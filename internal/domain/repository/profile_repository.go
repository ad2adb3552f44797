package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
// Callers must treat this as "not onboarded yet", not as a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for the lazily-created profile row.
type ProfileRepository interface {
	// FindByUserID retrieves the profile row for a user.
	// Returns ErrProfileNotFound when the row does not exist yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert creates or replaces the profile row for profile.UserID.
	// The stored UpdatedAt timestamp is written back into the entity.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
