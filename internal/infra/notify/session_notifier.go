// Package notify provides the in-process session-change notification bus.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"bazaar/internal/domain/service"

	"go.uber.org/fx"
)

// subscriberBuffer bounds each subscriber channel. A slow subscriber sheds
// its oldest queued change instead of blocking publishers.
const subscriberBuffer = 16

// sessionNotifier is a channel-based implementation of service.SessionNotifier.
// All session-state propagation inside the process goes through this bus.
type sessionNotifier struct {
	mu          sync.Mutex
	subscribers map[int]chan service.SessionChange
	nextID      int
	closed      bool
	logger      *slog.Logger
}

// NotifierParams holds dependencies for SessionNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewSessionNotifier creates the process-wide session notifier and registers
// its shutdown hook.
func NewSessionNotifier(params NotifierParams) service.SessionNotifier {
	notifier := &sessionNotifier{
		subscribers: make(map[int]chan service.SessionChange),
		logger:      params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing SessionNotifier")

			return notifier.Close()
		},
	})

	return notifier
}

// Publish delivers a session change to all current subscribers.
func (n *sessionNotifier) Publish(change service.SessionChange) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for id, ch := range n.subscribers {
		select {
		case ch <- change:
			continue
		default:
		}

		// The buffer is full. Shed the oldest queued change to make room: the
		// newest change must always land, or a lagging subscriber could miss
		// a logout and keep stale authenticated state forever.
		select {
		case dropped := <-ch:
			n.logger.Warn("session notifier subscriber is full, shedding oldest change",
				slog.Int("subscriber_id", id),
				slog.String("dropped_kind", string(dropped.Kind)),
				slog.String("kind", string(change.Kind)),
			)
		default:
		}

		select {
		case ch <- change:
		default:
			n.logger.Warn("session notifier subscriber is full, dropping change",
				slog.Int("subscriber_id", id),
				slog.String("kind", string(change.Kind)),
			)
		}
	}
}

// Subscribe registers a subscriber and returns its channel plus an idempotent
// unsubscribe function that closes the channel.
func (n *sessionNotifier) Subscribe() (<-chan service.SessionChange, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan service.SessionChange, subscriberBuffer)
	if n.closed {
		close(ch)

		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	n.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()

			if _, ok := n.subscribers[id]; ok {
				delete(n.subscribers, id)
				close(ch)
			}
		})
	}

	return ch, unsubscribe
}

// Close releases the notifier and all remaining subscriptions.
func (n *sessionNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil
	}
	n.closed = true

	for id, ch := range n.subscribers {
		delete(n.subscribers, id)
		close(ch)
	}

	return nil
}

// Module provides the session notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionNotifier),
)
