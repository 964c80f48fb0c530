package postgres

import (
	"context"
	"time"

	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/repository"
	"hearth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// FindByID retrieves an event by id within a household scope.
func (repo *eventRepository) FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// ListByHousehold retrieves events of a household ordered by start time.
func (repo *eventRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID)
	if from != nil {
		query = query.Where("start_time >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_time < ?", *to)
	}

	if err := query.
		Order("start_time ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events by household")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// Update modifies an existing event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("household_id = ? AND id = ?", event.HouseholdID, event.ID).
		Updates(map[string]any{
			"title":                   event.Title,
			"description":             event.Description,
			"start_time":              event.StartTime,
			"end_time":                event.EndTime,
			"is_all_day":              event.IsAllDay,
			"location":                event.Location,
			"reminder_enabled":        event.ReminderEnabled,
			"reminder_minutes_before": event.ReminderMinutesBefore,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event within a household scope.
func (repo *eventRepository) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:                    data.ID,
		HouseholdID:           data.HouseholdID,
		CreatedBy:             data.CreatedBy,
		Title:                 data.Title,
		Description:           data.Description,
		StartTime:             data.StartTime,
		EndTime:               data.EndTime,
		IsAllDay:              data.IsAllDay,
		Location:              data.Location,
		ReminderEnabled:       data.ReminderEnabled,
		ReminderMinutesBefore: data.ReminderMinutesBefore,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:                    data.ID,
		HouseholdID:           data.HouseholdID,
		CreatedBy:             data.CreatedBy,
		Title:                 data.Title,
		Description:           data.Description,
		StartTime:             data.StartTime,
		EndTime:               data.EndTime,
		IsAllDay:              data.IsAllDay,
		Location:              data.Location,
		ReminderEnabled:       data.ReminderEnabled,
		ReminderMinutesBefore: data.ReminderMinutesBefore,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
