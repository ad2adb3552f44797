package service

import "github.com/google/uuid"

// SessionChangeKind distinguishes the kinds of session-change notifications.
type SessionChangeKind string

const (
	// SessionLogin fires after a successful credential login.
	SessionLogin SessionChangeKind = "login"
	// SessionSignup fires after account creation. The account exists but is
	// not authenticated; subscribers must not treat this as a login.
	SessionSignup SessionChangeKind = "signup"
	// SessionLogout fires when a session is terminated, locally or remotely.
	SessionLogout SessionChangeKind = "logout"
	// SessionRefreshed fires when an access token is reissued for a live session.
	SessionRefreshed SessionChangeKind = "refreshed"
)

// SessionChange is a notification that the authentication state of a user changed.
type SessionChange struct {
	Kind   SessionChangeKind
	UserID uuid.UUID
}

// SessionNotifier is the publish side of session-change notifications.
// The user usecase publishes here; the session tracker subscribes. Keeping the
// notification path as the only way session state propagates gives the tracker
// a single source of truth for "who is logged in".
type SessionNotifier interface {
	// Publish delivers a session change to all current subscribers.
	Publish(change SessionChange)

	// Subscribe registers a subscriber and returns its channel plus an
	// unsubscribe function. The unsubscribe function is idempotent and closes
	// the channel; it must be called on teardown to avoid leaked subscriptions.
	Subscribe() (<-chan SessionChange, func())

	// Close releases the notifier and all remaining subscriptions.
	Close() error
}
