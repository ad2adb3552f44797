package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationServiceFixtures struct {
	service          usecase.ApplicationUsecase
	userRepo         *fakeUserRepo
	eventRepo        *fakeEventRepo
	registrationRepo *fakeRegistrationRepo
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	eventRepo := newFakeEventRepo()
	registrationRepo := newFakeRegistrationRepo(eventRepo, userRepo)
	factory := &fakeRepoFactory{
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}

	svc := NewApplicationService(ApplicationServiceParams{
		TxManager:        &fakeTxManager{factory: factory},
		EventRepo:        eventRepo,
		RegistrationRepo: registrationRepo,
		UserRepo:         userRepo,
		QRCodeService:    &fakeQRCodeService{},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return applicationServiceFixtures{
		service:          svc,
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

func seedApplicant(t *testing.T, userRepo *fakeUserRepo, name, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: email, Role: entity.RoleCreator}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return user
}

func seedRegistration(t *testing.T, registrationRepo *fakeRegistrationRepo, eventID, userID uuid.UUID) *entity.Registration {
	t.Helper()

	registration := &entity.Registration{EventID: eventID, UserID: userID, Status: entity.RegistrationPending}
	require.NoError(t, registrationRepo.Create(context.Background(), registration))

	return registration
}

func TestApplicationService_ListApplications_ScopedToOwnedEvents(t *testing.T) {
	fixtures := createTestApplicationService(t)
	organizerA := uuid.New()
	organizerB := uuid.New()
	ownEvent := seedEvent(t, fixtures.eventRepo, organizerA)
	foreignEvent := seedEvent(t, fixtures.eventRepo, organizerB)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")

	seedRegistration(t, fixtures.registrationRepo, ownEvent.ID, applicant.ID)
	seedRegistration(t, fixtures.registrationRepo, foreignEvent.ID, applicant.ID)

	applications, err := fixtures.service.ListApplications(context.Background(), organizerA)

	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, ownEvent.ID, applications[0].EventID)
	assert.Equal(t, applicant.ID, applications[0].ApplicantID)
	assert.Equal(t, "Asha", applications[0].ApplicantName)
	assert.Equal(t, "asha@example.com", applications[0].ApplicantEmail)
	assert.Equal(t, ownEvent.Name, applications[0].EventName)
}

func TestApplicationService_ListApplications_NoOwnedEvents(t *testing.T) {
	fixtures := createTestApplicationService(t)
	someoneElse := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, someoneElse)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)

	// An organizer who owns nothing sees nothing, never everything.
	applications, err := fixtures.service.ListApplications(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, applications)
}

func TestApplicationService_SetStatus_ApprovesPending(t *testing.T) {
	fixtures := createTestApplicationService(t)
	organizerID := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, organizerID)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	registration := seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)

	updated, err := fixtures.service.SetStatus(context.Background(), &usecase.SetStatusInput{
		OrganizerID:    organizerID,
		RegistrationID: registration.ID,
		Status:         entity.RegistrationApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationApproved, updated.Status)
}

func TestApplicationService_SetStatus_TerminalStatusNeverTransitions(t *testing.T) {
	fixtures := createTestApplicationService(t)
	organizerID := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, organizerID)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	registration := seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)

	input := &usecase.SetStatusInput{
		OrganizerID:    organizerID,
		RegistrationID: registration.ID,
		Status:         entity.RegistrationRejected,
	}
	_, err := fixtures.service.SetStatus(context.Background(), input)
	require.NoError(t, err)

	input.Status = entity.RegistrationApproved
	_, err = fixtures.service.SetStatus(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationDecided)

	// The stored status is still the first decision.
	stored, err := fixtures.registrationRepo.FindByID(context.Background(), registration.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationRejected, stored.Status)
}

func TestApplicationService_SetStatus_ForeignRegistrationReadsAsNotFound(t *testing.T) {
	fixtures := createTestApplicationService(t)
	owner := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, owner)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	registration := seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)

	// A different organizer, even one with events of their own, cannot touch it.
	intruder := uuid.New()
	seedEvent(t, fixtures.eventRepo, intruder)

	_, err := fixtures.service.SetStatus(context.Background(), &usecase.SetStatusInput{
		OrganizerID:    intruder,
		RegistrationID: registration.ID,
		Status:         entity.RegistrationApproved,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)

	stored, err := fixtures.registrationRepo.FindByID(context.Background(), registration.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationPending, stored.Status)
}

func TestApplicationService_SetStatus_RejectsNonTerminalStatus(t *testing.T) {
	fixtures := createTestApplicationService(t)

	_, err := fixtures.service.SetStatus(context.Background(), &usecase.SetStatusInput{
		OrganizerID:    uuid.New(),
		RegistrationID: uuid.New(),
		Status:         entity.RegistrationPending,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestApplicationService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	fixtures := createTestApplicationService(t)

	_, err := fixtures.service.SetStatus(context.Background(), &usecase.SetStatusInput{
		OrganizerID:    uuid.New(),
		RegistrationID: uuid.New(),
		Status:         entity.RegistrationStatus("cancelled"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestApplicationService_CheckInTicket_ApprovedTicket(t *testing.T) {
	fixtures := createTestApplicationService(t)
	organizerID := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, organizerID)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	registration := seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)
	require.NoError(t, fixtures.registrationRepo.UpdateStatusFromPending(
		context.Background(), registration.ID, entity.RegistrationApproved, []uuid.UUID{event.ID}))

	application, err := fixtures.service.CheckInTicket(context.Background(), &usecase.CheckInTicketInput{
		OrganizerID: organizerID,
		TicketData:  "qr:" + registration.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, registration.ID, application.RegistrationID)
	assert.Equal(t, event.Name, application.EventName)
	assert.Equal(t, "Asha", application.ApplicantName)
	assert.Equal(t, "asha@example.com", application.ApplicantEmail)
	assert.Equal(t, entity.RegistrationApproved, application.Status)
}

func TestApplicationService_CheckInTicket_PendingTicket(t *testing.T) {
	fixtures := createTestApplicationService(t)
	organizerID := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, organizerID)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	registration := seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)

	_, err := fixtures.service.CheckInTicket(context.Background(), &usecase.CheckInTicketInput{
		OrganizerID: organizerID,
		TicketData:  "qr:" + registration.ID.String(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotApproved)
}

func TestApplicationService_CheckInTicket_ForeignEvent(t *testing.T) {
	fixtures := createTestApplicationService(t)
	owner := uuid.New()
	event := seedEvent(t, fixtures.eventRepo, owner)
	applicant := seedApplicant(t, fixtures.userRepo, "Asha", "asha@example.com")
	registration := seedRegistration(t, fixtures.registrationRepo, event.ID, applicant.ID)
	require.NoError(t, fixtures.registrationRepo.UpdateStatusFromPending(
		context.Background(), registration.ID, entity.RegistrationApproved, []uuid.UUID{event.ID}))

	// A valid ticket scanned by the wrong organizer reads as not-found.
	_, err := fixtures.service.CheckInTicket(context.Background(), &usecase.CheckInTicketInput{
		OrganizerID: uuid.New(),
		TicketData:  "qr:" + registration.ID.String(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestApplicationService_CheckInTicket_UnknownRegistration(t *testing.T) {
	fixtures := createTestApplicationService(t)

	_, err := fixtures.service.CheckInTicket(context.Background(), &usecase.CheckInTicketInput{
		OrganizerID: uuid.New(),
		TicketData:  "qr:" + uuid.NewString(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestApplicationService_CheckInTicket_UnreadablePayload(t *testing.T) {
	fixtures := createTestApplicationService(t)

	_, err := fixtures.service.CheckInTicket(context.Background(), &usecase.CheckInTicketInput{
		OrganizerID: uuid.New(),
		TicketData:  "not-a-ticket",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
