package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the domain.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindByID retrieves a single event.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(&eventM), nil
}

// List retrieves all events, newest date first.
func (repo *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var eventMs []model.EventModel
	err := repo.db.WithContext(ctx).
		Order("date DESC").
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return toEventDomainSlice(eventMs), nil
}

// ListByOrganizerID retrieves the events owned by an organizer.
func (repo *eventRepository) ListByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]*entity.Event, error) {
	var eventMs []model.EventModel
	err := repo.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("date DESC").
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by organizer")
	}

	return toEventDomainSlice(eventMs), nil
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("event references missing organizer")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// Update modifies an existing event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Save(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}

	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// DeleteOwned removes an event only when it is owned by organizerID.
// The ownership predicate lives in the statement itself so a non-owner delete
// can never race its way through.
func (repo *eventRepository) DeleteOwned(ctx context.Context, id, organizerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND organizer_id = ?", id, organizerID).
		Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Date:        data.Date,
		Description: data.Description,
		Location:    data.Location,
		OrganizerID: data.OrganizerID,
		Eligibility: data.Eligibility,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toEventDomainSlice(data []model.EventModel) []*entity.Event {
	events := make([]*entity.Event, 0, len(data))
	for i := range data {
		events = append(events, toEventDomain(&data[i]))
	}

	return events
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Date:        data.Date,
		Description: data.Description,
		Location:    data.Location,
		OrganizerID: data.OrganizerID,
		Eligibility: data.Eligibility,
	}
}
