package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token cannot be located.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
// A refresh token row is the durable representation of a login session.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a non-expired session by its token hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindLatestActiveRefreshToken retrieves the most recently created
	// non-expired session, if any. Used by the session tracker's bootstrap
	// query. Returns ErrRefreshTokenNotFound when no live session exists.
	FindLatestActiveRefreshToken(ctx context.Context) (*entity.RefreshToken, error)

	// FindRefreshTokensByUserID retrieves all session records for a user.
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// CountActiveSessionsByUserID counts the user's non-expired sessions.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteRefreshTokenByHash removes a session by its token hash.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes all sessions for a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
