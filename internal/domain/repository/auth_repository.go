package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrAuthNotFound is a domain-specific error returned when an authentication record is not found.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves an authentication record by provider and provider-side user id.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new authentication record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
