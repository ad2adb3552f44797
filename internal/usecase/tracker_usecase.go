package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SessionState is the authentication state reported by the session tracker.
type SessionState string

const (
	// SessionStateLoading means the bootstrap query is still outstanding.
	// No role-gated content may be served in this state.
	SessionStateLoading SessionState = "loading"
	// SessionStateUnauthenticated means no valid session exists.
	SessionStateUnauthenticated SessionState = "unauthenticated"
	// SessionStateAuthenticated means a session exists and User is resolved.
	SessionStateAuthenticated SessionState = "authenticated"
)

// SessionSnapshot is a point-in-time view of the tracked session.
// User is non-nil exactly when State is authenticated.
type SessionSnapshot struct {
	State SessionState
	User  *entity.UserView
}

// SessionTrackerUsecase owns the process's observable authentication state.
// It bootstraps asynchronously on Start, follows session-change notifications
// for its lifetime, and releases its subscription on Close. All user view
// updates flow through the notification path; nothing else mutates the
// tracked state.
type SessionTrackerUsecase interface {
	// Start begins the bootstrap query and subscribes to session changes.
	// Calling Start on a started tracker is an error.
	Start(ctx context.Context) error

	// Snapshot returns the current session state. While bootstrap is
	// outstanding the state is loading.
	Snapshot() SessionSnapshot

	// Close releases the subscription and stops the tracker. It is idempotent.
	Close() error
}
