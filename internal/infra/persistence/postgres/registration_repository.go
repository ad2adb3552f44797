package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registrationRepository implements the domain.RegistrationRepository interface using GORM.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

// FindByID retrieves a single registration.
func (repo *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	var registrationM model.RegistrationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&registrationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by id")
	}

	return toRegistrationDomain(&registrationM), nil
}

// FindByEventAndUser retrieves the registration for an (event, user) pair.
func (repo *registrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Registration, error) {
	var registrationM model.RegistrationModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&registrationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by event and user")
	}

	return toRegistrationDomain(&registrationM), nil
}

// Create persists a new registration. The unique index on (event_id, user_id)
// turns a concurrent duplicate into ErrDuplicateRegistration, which the
// usecase layer treats as success.
func (repo *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	registrationM := fromRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRegistration
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEventNotFound.WrapMessage("registration references missing event or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration")
	}

	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt
	registration.UpdatedAt = registrationM.UpdatedAt

	return nil
}

// ListByUserID retrieves all registrations held by a user, any status.
func (repo *registrationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error) {
	var registrationMs []model.RegistrationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&registrationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registrations by user")
	}

	registrations := make([]*entity.Registration, 0, len(registrationMs))
	for i := range registrationMs {
		registrations = append(registrations, toRegistrationDomain(&registrationMs[i]))
	}

	return registrations, nil
}

// applicationRow is the scan target for the applications join.
type applicationRow struct {
	RegistrationID uuid.UUID
	EventID        uuid.UUID
	EventName      string
	ApplicantID    uuid.UUID
	ApplicantName  string
	ApplicantEmail string
	Status         string
	AppliedAt      time.Time
}

// ListApplicationsByEventIDs retrieves registrations against exactly the given
// event id set, joined with event name and applicant identity.
func (repo *registrationRepository) ListApplicationsByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*entity.Application, error) {
	if len(eventIDs) == 0 {
		return []*entity.Application{}, nil
	}

	var rows []applicationRow
	err := repo.db.WithContext(ctx).
		Table("registrations").
		Select(`registrations.id AS registration_id,
			registrations.event_id AS event_id,
			events.name AS event_name,
			users.id AS applicant_id,
			users.name AS applicant_name,
			users.email AS applicant_email,
			registrations.status AS status,
			registrations.created_at AS applied_at`).
		Joins("JOIN events ON events.id = registrations.event_id").
		Joins("JOIN users ON users.id = registrations.user_id").
		Where("registrations.event_id IN ?", eventIDs).
		Order("registrations.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications by event ids")
	}

	applications := make([]*entity.Application, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		applications = append(applications, &entity.Application{
			RegistrationID: row.RegistrationID,
			EventID:        row.EventID,
			EventName:      row.EventName,
			ApplicantID:    row.ApplicantID,
			ApplicantName:  row.ApplicantName,
			ApplicantEmail: row.ApplicantEmail,
			Status:         entity.RegistrationStatus(row.Status),
			AppliedAt:      row.AppliedAt,
		})
	}

	return applications, nil
}

// UpdateStatusFromPending transitions a registration to status only if it is
// currently pending and belongs to an event in eventIDs. The pending check and
// the event scope both live in the WHERE clause, so a lost update or a
// non-owner write is impossible regardless of interleaving.
func (repo *registrationRepository) UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, eventIDs []uuid.UUID) error {
	if len(eventIDs) == 0 {
		return repository.ErrRegistrationNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ? AND status = ? AND event_id IN ?", id, entity.RegistrationPending.String(), eventIDs).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update registration status")
	}

	if result.RowsAffected == 0 {
		// Distinguish "already decided" from "not yours / missing".
		var registrationM model.RegistrationModel
		err := repo.db.WithContext(ctx).
			Where("id = ? AND event_id IN ?", id, eventIDs).
			First(&registrationM).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrRegistrationNotFound
			}

			return errors.Wrap(err, "failed to inspect registration status")
		}

		return repository.ErrRegistrationDecided
	}

	return nil
}

// toRegistrationDomain converts a GORM RegistrationModel to a domain Registration entity.
func toRegistrationDomain(data *model.RegistrationModel) *entity.Registration {
	if data == nil {
		return nil
	}

	return &entity.Registration{
		ID:        data.ID,
		EventID:   data.EventID,
		UserID:    data.UserID,
		Status:    entity.RegistrationStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRegistrationDomain converts a domain Registration entity to a GORM RegistrationModel.
func fromRegistrationDomain(data *entity.Registration) *model.RegistrationModel {
	if data == nil {
		return nil
	}

	return &model.RegistrationModel{
		ID:      data.ID,
		EventID: data.EventID,
		UserID:  data.UserID,
		Status:  data.Status.String(),
	}
}
