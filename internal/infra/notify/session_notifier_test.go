package notify

import (
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier() *sessionNotifier {
	return &sessionNotifier{
		subscribers: make(map[int]chan service.SessionChange),
		logger:      slog.New(slog.DiscardHandler),
	}
}

func TestSessionNotifier_PublishReachesAllSubscribers(t *testing.T) {
	notifier := newTestNotifier()
	defer notifier.Close()

	ch1, cancel1 := notifier.Subscribe()
	defer cancel1()
	ch2, cancel2 := notifier.Subscribe()
	defer cancel2()

	userID := uuid.New()
	notifier.Publish(service.SessionChange{Kind: service.SessionLogin, UserID: userID})

	for _, ch := range []<-chan service.SessionChange{ch1, ch2} {
		select {
		case change := <-ch:
			assert.Equal(t, service.SessionLogin, change.Kind)
			assert.Equal(t, userID, change.UserID)
		case <-time.After(time.Second):
			t.Fatal("expected session change, got none")
		}
	}
}

func TestSessionNotifier_UnsubscribeIsIdempotent(t *testing.T) {
	notifier := newTestNotifier()
	defer notifier.Close()

	ch, cancel := notifier.Subscribe()
	cancel()
	cancel() // Second call must be a no-op

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic
	notifier.Publish(service.SessionChange{Kind: service.SessionLogout, UserID: uuid.New()})
}

func TestSessionNotifier_FullSubscriberShedsOldest(t *testing.T) {
	notifier := newTestNotifier()
	defer notifier.Close()

	ch, cancel := notifier.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		notifier.Publish(service.SessionChange{Kind: service.SessionRefreshed, UserID: uuid.New()})
	}

	// The buffer stays bounded: overflow sheds the oldest queued change.
	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			assert.Equal(t, subscriberBuffer, received)

			return
		}
	}
}

func TestSessionNotifier_FullSubscriberStillReceivesNewestChange(t *testing.T) {
	notifier := newTestNotifier()
	defer notifier.Close()

	ch, cancel := notifier.Subscribe()
	defer cancel()

	// Flood a subscriber that never reads, then publish a logout. The logout
	// must survive the overflow, or the tracker could stay authenticated
	// against a dead session.
	for i := 0; i < subscriberBuffer*2; i++ {
		notifier.Publish(service.SessionChange{Kind: service.SessionRefreshed, UserID: uuid.New()})
	}
	userID := uuid.New()
	notifier.Publish(service.SessionChange{Kind: service.SessionLogout, UserID: userID})

	var last service.SessionChange
	drained := 0
	for {
		select {
		case change := <-ch:
			last = change
			drained++
		default:
			require.Equal(t, subscriberBuffer, drained)
			assert.Equal(t, service.SessionLogout, last.Kind)
			assert.Equal(t, userID, last.UserID)

			return
		}
	}
}

func TestSessionNotifier_CloseTerminatesSubscribers(t *testing.T) {
	notifier := newTestNotifier()

	ch, cancel := notifier.Subscribe()
	defer cancel()

	require.NoError(t, notifier.Close())
	require.NoError(t, notifier.Close()) // Idempotent

	_, open := <-ch
	assert.False(t, open)

	// Subscribe after close hands back an already-closed channel
	late, lateCancel := notifier.Subscribe()
	defer lateCancel()
	_, open = <-late
	assert.False(t, open)
}
