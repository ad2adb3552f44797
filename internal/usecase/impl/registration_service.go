package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		eventRepo:        params.EventRepo,
		registrationRepo: params.RegistrationRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a pending registration for the (event, user) pair. Repeat
// calls, including a concurrent duplicate racing past the existence check,
// converge on the one stored row without surfacing an error.
//
// Register deliberately runs without a transaction. The unique index on
// (event_id, user_id) is the sole concurrency control, and postgres aborts an
// open transaction after a constraint violation, so the recovery fetch below
// must run on a connection the failed insert has not poisoned.
func (srv *registrationService) Register(ctx context.Context, userID, eventID uuid.UUID) (*entity.Registration, error) {
	registration, err := srv.register(ctx, userID, eventID)
	if err != nil {
		srv.log(ctx).Error("Failed to register for event",
			slog.Any("userID", userID), slog.Any("eventID", eventID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event registration recorded",
		slog.Any("userID", userID), slog.Any("eventID", eventID),
		slog.String("status", registration.Status.String()))

	return registration, nil
}

func (srv *registrationService) register(ctx context.Context, userID, eventID uuid.UUID) (*entity.Registration, error) {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event for registration")
	}

	existing, err := srv.registrationRepo.FindByEventAndUser(ctx, eventID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil, errors.Wrap(err, "failed to check existing registration")
	}

	created := &entity.Registration{
		EventID: eventID,
		UserID:  userID,
		Status:  entity.RegistrationPending,
	}
	if err := srv.registrationRepo.Create(ctx, created); err != nil {
		if errors.Is(err, repository.ErrDuplicateRegistration) {
			// Lost the race to a concurrent registration. The row that won
			// is the row we wanted; load it with a fresh statement.
			existing, findErr := srv.registrationRepo.FindByEventAndUser(ctx, eventID, userID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load registration after duplicate")
			}

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create registration")
	}

	return created, nil
}

// ListRegisteredEventIDs projects the user's registrations down to the event
// id set, any status. The delivery layer uses it to mark listed events as
// already registered.
func (srv *registrationService) ListRegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	registrations, err := srv.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list registrations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list registrations")
	}

	seen := make(map[uuid.UUID]struct{}, len(registrations))
	ids := make([]uuid.UUID, 0, len(registrations))
	for _, registration := range registrations {
		if _, ok := seen[registration.EventID]; ok {
			continue
		}
		seen[registration.EventID] = struct{}{}
		ids = append(ids, registration.EventID)
	}

	return ids, nil
}

// ListRegistrations returns the user's registrations with their statuses.
func (srv *registrationService) ListRegistrations(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error) {
	registrations, err := srv.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list registrations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list registrations")
	}

	return registrations, nil
}

// TicketQR renders the QR ticket for one of the caller's approved
// registrations. Registrations held by other users resolve to not-found
// rather than forbidden, so the endpoint does not leak which ids exist.
func (srv *registrationService) TicketQR(ctx context.Context, userID, registrationID uuid.UUID) ([]byte, error) {
	registration, err := srv.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}
		srv.log(ctx).Error("Failed to load registration", slog.Any("registrationID", registrationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load registration")
	}

	if registration.UserID != userID {
		return nil, domainerrors.ErrRegistrationNotFound
	}
	if registration.Status != entity.RegistrationApproved {
		return nil, domainerrors.ErrRegistrationNotApproved
	}

	png, err := srv.qrcodeService.GenerateTicketQR(registration.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate ticket QR", slog.Any("registrationID", registrationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate ticket QR")
	}

	return png, nil
}
