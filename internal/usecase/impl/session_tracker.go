package impl

import (
	"context"
	"log/slog"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionTracker implements SessionTrackerUsecase. It owns the process's
// authentication state as an explicit value with init and teardown, instead of
// an ambient global. All updates to the tracked user view flow through the
// session-change subscription plus the bootstrap query; nothing else writes it.
//
// In-flight resolutions carry the generation they were started under. A
// resolution that finishes after a newer change has bumped the generation is
// dropped, so stale responses never overwrite fresher state.
type sessionTracker struct {
	refreshTokenRepo repository.RefreshTokenRepository
	resolver         usecase.ProfileUsecase
	notifier         service.SessionNotifier
	logger           *slog.Logger

	mu          sync.Mutex
	state       usecase.SessionState
	user        *entity.UserView
	generation  uint64
	started     bool
	closed      bool
	unsubscribe func()
}

// SessionTrackerParams holds dependencies for the session tracker, injected by Fx.
type SessionTrackerParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	Resolver         usecase.ProfileUsecase
	Notifier         service.SessionNotifier
	Logger           *slog.Logger
}

// NewSessionTracker is the constructor for sessionTracker.
func NewSessionTracker(params SessionTrackerParams) usecase.SessionTrackerUsecase {
	return &sessionTracker{
		refreshTokenRepo: params.RefreshTokenRepo,
		resolver:         params.Resolver,
		notifier:         params.Notifier,
		logger:           params.Logger,
		state:            usecase.SessionStateLoading,
	}
}

// Start begins the asynchronous bootstrap query and subscribes to session
// changes. Exactly one subscription exists per started tracker; Close
// releases it.
func (t *sessionTracker) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()

		return errors.New("session tracker already started")
	}
	t.started = true
	t.state = usecase.SessionStateLoading

	changes, unsubscribe := t.notifier.Subscribe()
	t.unsubscribe = unsubscribe
	generation := t.generation
	t.mu.Unlock()

	go t.bootstrap(ctx, generation)
	go t.watch(ctx, changes)

	return nil
}

// Snapshot returns the current session state under the mutex.
func (t *sessionTracker) Snapshot() usecase.SessionSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return usecase.SessionSnapshot{
		State: t.state,
		User:  t.user,
	}
}

// Close releases the subscription and stops the tracker. It is idempotent.
func (t *sessionTracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	// Invalidate any in-flight resolution.
	t.generation++

	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}

	return nil
}

// bootstrap queries the session store for an existing live session. Bootstrap
// failures collapse to unauthenticated, never to a crash.
func (t *sessionTracker) bootstrap(ctx context.Context, generation uint64) {
	token, err := t.refreshTokenRepo.FindLatestActiveRefreshToken(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			t.logger.Error("Session bootstrap query failed", slog.Any("error", err))
		}
		t.apply(generation, usecase.SessionStateUnauthenticated, nil)

		return
	}

	t.resolve(ctx, generation, token.UserID)
}

// watch consumes session-change notifications until the subscription channel
// closes. Every change bumps the generation before resolution starts, so a
// slower older resolution can never clobber the newer outcome.
func (t *sessionTracker) watch(ctx context.Context, changes <-chan service.SessionChange) {
	for change := range changes {
		switch change.Kind {
		case service.SessionLogin, service.SessionRefreshed:
			generation := t.bumpGeneration()
			go t.resolve(ctx, generation, change.UserID)

		case service.SessionLogout:
			generation := t.bumpGeneration()
			t.apply(generation, usecase.SessionStateUnauthenticated, nil)

		case service.SessionSignup:
			// The account exists but is not authenticated. Re-resolve only
			// when it belongs to the currently tracked user.
			t.mu.Lock()
			tracked := t.user != nil && t.user.ID == change.UserID
			t.mu.Unlock()
			if tracked {
				generation := t.bumpGeneration()
				go t.resolve(ctx, generation, change.UserID)
			}
		}
	}
}

// resolve turns an identity into a tracked user view. Resolution failures
// collapse to unauthenticated; the error stays at the observability layer.
func (t *sessionTracker) resolve(ctx context.Context, generation uint64, userID uuid.UUID) {
	view, err := t.resolver.Resolve(ctx, userID)
	if err != nil {
		t.logger.Error("Session resolution failed", slog.Any("userID", userID), slog.Any("error", err))
		t.apply(generation, usecase.SessionStateUnauthenticated, nil)

		return
	}

	t.apply(generation, usecase.SessionStateAuthenticated, view)
}

func (t *sessionTracker) bumpGeneration() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++

	return t.generation
}

// apply installs a resolution outcome unless it is stale or the tracker has
// been closed.
func (t *sessionTracker) apply(generation uint64, state usecase.SessionState, user *entity.UserView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || generation != t.generation {
		return
	}

	t.state = state
	t.user = user
}
