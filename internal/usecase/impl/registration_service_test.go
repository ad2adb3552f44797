package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationServiceFixtures struct {
	service          usecase.RegistrationUsecase
	userRepo         *fakeUserRepo
	eventRepo        *fakeEventRepo
	registrationRepo *fakeRegistrationRepo
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	eventRepo := newFakeEventRepo()
	registrationRepo := newFakeRegistrationRepo(eventRepo, userRepo)

	svc := NewRegistrationService(RegistrationServiceParams{
		EventRepo:        eventRepo,
		RegistrationRepo: registrationRepo,
		QRCodeService:    &fakeQRCodeService{},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return registrationServiceFixtures{
		service:          svc,
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

func seedEvent(t *testing.T, eventRepo *fakeEventRepo, organizerID uuid.UUID) *entity.Event {
	t.Helper()

	event := &entity.Event{
		Name:        "Winter Craft Fair",
		Category:    "Exhibition",
		Date:        time.Now().Add(72 * time.Hour),
		OrganizerID: organizerID,
	}
	require.NoError(t, eventRepo.Create(context.Background(), event))

	return event
}

func TestRegistrationService_Register_CreatesPending(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	userID := uuid.New()

	registration, err := fixtures.service.Register(context.Background(), userID, event.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationPending, registration.Status)
	assert.Equal(t, event.ID, registration.EventID)
	assert.Equal(t, userID, registration.UserID)
}

func TestRegistrationService_Register_IsIdempotent(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	userID := uuid.New()

	first, err := fixtures.service.Register(context.Background(), userID, event.ID)
	require.NoError(t, err)

	second, err := fixtures.service.Register(context.Background(), userID, event.ID)

	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	registrations, err := fixtures.service.ListRegistrations(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, registrations, 1)
}

func TestRegistrationService_Register_RepeatDoesNotResetStatus(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	userID := uuid.New()

	first, err := fixtures.service.Register(context.Background(), userID, event.ID)
	require.NoError(t, err)

	require.NoError(t, fixtures.registrationRepo.UpdateStatusFromPending(
		context.Background(), first.ID, entity.RegistrationApproved, []uuid.UUID{event.ID}))

	// Registering again after approval must surface the decided row untouched.
	second, err := fixtures.service.Register(context.Background(), userID, event.ID)

	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entity.RegistrationApproved, second.Status)
}

func TestRegistrationService_Register_ConcurrentDuplicateConverges(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	userID := uuid.New()

	// Another request wins the insert between existence check and create. The
	// losing insert is a failed statement, so the recovery fetch must not run
	// on a connection that statement aborted.
	racing := &entity.Registration{EventID: event.ID, UserID: userID, Status: entity.RegistrationPending}
	fixtures.registrationRepo.beforeCreate = func() {
		require.NoError(t, fixtures.registrationRepo.Create(context.Background(), racing))
	}

	registration, err := fixtures.service.Register(context.Background(), userID, event.ID)

	require.NoError(t, err)
	assert.Equal(t, racing.ID, registration.ID)
	assert.Equal(t, entity.RegistrationPending, registration.Status)

	registrations, err := fixtures.service.ListRegistrations(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, registrations, 1)
}

func TestRegistrationService_Register_UnknownEvent(t *testing.T) {
	fixtures := createTestRegistrationService(t)

	_, err := fixtures.service.Register(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestRegistrationService_ListRegisteredEventIDs(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	organizerID := uuid.New()
	eventA := seedEvent(t, fixtures.eventRepo, organizerID)
	eventB := seedEvent(t, fixtures.eventRepo, organizerID)
	userID := uuid.New()

	_, err := fixtures.service.Register(context.Background(), userID, eventA.ID)
	require.NoError(t, err)
	_, err = fixtures.service.Register(context.Background(), userID, eventB.ID)
	require.NoError(t, err)

	ids, err := fixtures.service.ListRegisteredEventIDs(context.Background(), userID)

	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{eventA.ID, eventB.ID}, ids)
}

func TestRegistrationService_TicketQR_Approved(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	userID := uuid.New()

	registration, err := fixtures.service.Register(context.Background(), userID, event.ID)
	require.NoError(t, err)
	require.NoError(t, fixtures.registrationRepo.UpdateStatusFromPending(
		context.Background(), registration.ID, entity.RegistrationApproved, []uuid.UUID{event.ID}))

	png, err := fixtures.service.TicketQR(context.Background(), userID, registration.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRegistrationService_TicketQR_PendingRejected(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	userID := uuid.New()

	registration, err := fixtures.service.Register(context.Background(), userID, event.ID)
	require.NoError(t, err)

	_, err = fixtures.service.TicketQR(context.Background(), userID, registration.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotApproved)
}

func TestRegistrationService_TicketQR_ForeignRegistrationReadsAsNotFound(t *testing.T) {
	fixtures := createTestRegistrationService(t)
	event := seedEvent(t, fixtures.eventRepo, uuid.New())
	ownerID := uuid.New()

	registration, err := fixtures.service.Register(context.Background(), ownerID, event.ID)
	require.NoError(t, err)
	require.NoError(t, fixtures.registrationRepo.UpdateStatusFromPending(
		context.Background(), registration.ID, entity.RegistrationApproved, []uuid.UUID{event.ID}))

	_, err = fixtures.service.TicketQR(context.Background(), uuid.New(), registration.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}
