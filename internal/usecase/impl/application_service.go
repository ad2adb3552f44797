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

// applicationService implements the ApplicationUsecase interface. Every query
// and update it issues is scoped to the acting organizer's own event ids, so
// an organizer who owns nothing sees and decides nothing.
type applicationService struct {
	txManager        repository.TransactionManager
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
	userRepo         repository.UserRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	UserRepo         repository.UserRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		txManager:        params.TxManager,
		eventRepo:        params.EventRepo,
		registrationRepo: params.RegistrationRepo,
		userRepo:         params.UserRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *applicationService) ownedEventIDs(ctx context.Context, eventRepo repository.EventRepository, organizerID uuid.UUID) ([]uuid.UUID, error) {
	events, err := eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned events")
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}

	return ids, nil
}

// ListApplications returns the registrations against the organizer's own
// events, joined with event name and applicant identity. An empty owned set
// yields an empty list without touching the registration table.
func (srv *applicationService) ListApplications(ctx context.Context, organizerID uuid.UUID) ([]*entity.Application, error) {
	eventIDs, err := srv.ownedEventIDs(ctx, srv.eventRepo, organizerID)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve owned events", slog.Any("organizerID", organizerID), slog.Any("error", err))

		return nil, err
	}
	if len(eventIDs) == 0 {
		return []*entity.Application{}, nil
	}

	applications, err := srv.registrationRepo.ListApplicationsByEventIDs(ctx, eventIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to list applications", slog.Any("organizerID", organizerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list applications")
	}

	return applications, nil
}

// SetStatus transitions a pending registration to approved or rejected. The
// ownership scope and the pending precondition both live in the update's
// filter, so a concurrent decision or a foreign registration can never slip
// through between a check and the write.
func (srv *applicationService) SetStatus(ctx context.Context, input *usecase.SetStatusInput) (*entity.Registration, error) {
	if !input.Status.IsValid() || !input.Status.Terminal() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be approved or rejected")
	}

	var updated *entity.Registration

	txErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.EventRepo()
		registrationRepo := repoFactory.RegistrationRepo()

		eventIDs, err := srv.ownedEventIDs(ctx, eventRepo, input.OrganizerID)
		if err != nil {
			return err
		}

		if err := registrationRepo.UpdateStatusFromPending(ctx, input.RegistrationID, input.Status, eventIDs); err != nil {
			switch {
			case errors.Is(err, repository.ErrRegistrationDecided):
				return domainerrors.ErrRegistrationDecided
			case errors.Is(err, repository.ErrRegistrationNotFound):
				return domainerrors.ErrRegistrationNotFound
			default:
				return errors.Wrap(err, "failed to update registration status")
			}
		}

		registration, err := registrationRepo.FindByID(ctx, input.RegistrationID)
		if err != nil {
			return errors.Wrap(err, "failed to load updated registration")
		}
		updated = registration

		return nil
	})
	if txErr != nil {
		srv.log(ctx).Error("Failed to set application status",
			slog.Any("organizerID", input.OrganizerID),
			slog.Any("registrationID", input.RegistrationID),
			slog.String("status", input.Status.String()),
			slog.Any("error", txErr))

		return nil, txErr
	}

	srv.log(ctx).Info("Application decided",
		slog.Any("organizerID", input.OrganizerID),
		slog.Any("registrationID", input.RegistrationID),
		slog.String("status", updated.Status.String()))

	return updated, nil
}

// CheckInTicket decodes a scanned ticket payload and verifies it names an
// approved registration for one of the organizer's own events. The joined
// application record is returned so the door screen can show who is entering.
func (srv *applicationService) CheckInTicket(ctx context.Context, input *usecase.CheckInTicketInput) (*entity.Application, error) {
	registrationID, err := srv.qrcodeService.ParseTicketQR(input.TicketData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unreadable ticket code")
	}

	registration, err := srv.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}
		srv.log(ctx).Error("Failed to load ticket registration",
			slog.Any("registrationID", registrationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load ticket registration")
	}

	event, err := srv.eventRepo.FindByID(ctx, registration.EventID)
	if err != nil {
		srv.log(ctx).Error("Failed to load ticket event",
			slog.Any("eventID", registration.EventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load ticket event")
	}
	if event.OrganizerID != input.OrganizerID {
		// A ticket for someone else's event reads as not-found, so a scanner
		// cannot confirm which registration ids exist.
		return nil, domainerrors.ErrRegistrationNotFound
	}
	if registration.Status != entity.RegistrationApproved {
		return nil, domainerrors.ErrRegistrationNotApproved
	}

	applicant, err := srv.userRepo.FindByID(ctx, registration.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load ticket holder",
			slog.Any("userID", registration.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load ticket holder")
	}

	srv.log(ctx).Info("Ticket checked in",
		slog.Any("organizerID", input.OrganizerID),
		slog.Any("registrationID", registration.ID),
		slog.Any("eventID", event.ID))

	return &entity.Application{
		RegistrationID: registration.ID,
		EventID:        event.ID,
		EventName:      event.Name,
		ApplicantID:    applicant.ID,
		ApplicantName:  applicant.Name,
		ApplicantEmail: applicant.Email,
		Status:         registration.Status,
		AppliedAt:      registration.CreatedAt,
	}, nil
}
