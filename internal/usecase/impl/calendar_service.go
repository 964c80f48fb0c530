package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hearth/internal/delivery/context"
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/repository"
	"hearth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// calendarService implements the CalendarUsecase interface.
type calendarService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// CalendarServiceParams holds dependencies for calendarService, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	return &calendarService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent creates an event in the actor's household.
func (srv *calendarService) CreateEvent(ctx context.Context, actor *entity.User, input *usecase.CreateEventInput) (*entity.Event, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if err := validateEventTimes(input.StartTime, input.EndTime, input.ReminderEnabled, input.ReminderMinutesBefore); err != nil {
		return nil, err
	}

	event := &entity.Event{
		HouseholdID:           householdID,
		CreatedBy:             actor.ID,
		Title:                 input.Title,
		Description:           input.Description,
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		IsAllDay:              input.IsAllDay,
		Location:              input.Location,
		ReminderEnabled:       input.ReminderEnabled,
		ReminderMinutesBefore: input.ReminderMinutesBefore,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.Any("householdID", householdID))

	return event, nil
}

// GetEvent returns one event within the household scope.
func (srv *calendarService) GetEvent(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Event, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	event, err := srv.eventRepo.FindByID(ctx, householdID, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// ListEvents returns household events, optionally bounded to [from, to).
func (srv *calendarService) ListEvents(ctx context.Context, actor *entity.User, from, to *time.Time) ([]*entity.Event, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if from != nil && to != nil && !to.After(*from) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("to must be after from")
	}

	events, err := srv.eventRepo.ListByHousehold(ctx, householdID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// UpdateEvent applies partial updates to an event.
func (srv *calendarService) UpdateEvent(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateEventInput) (*entity.Event, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	event, err := srv.eventRepo.FindByID(ctx, householdID, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find event for update")
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = input.EndTime
	}
	if input.IsAllDay != nil {
		event.IsAllDay = *input.IsAllDay
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.ReminderEnabled != nil {
		event.ReminderEnabled = *input.ReminderEnabled
	}
	if input.ReminderMinutesBefore != nil {
		event.ReminderMinutesBefore = input.ReminderMinutesBefore
	}

	if err := validateEventTimes(event.StartTime, event.EndTime, event.ReminderEnabled, event.ReminderMinutesBefore); err != nil {
		return nil, err
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event within the household scope.
func (srv *calendarService) DeleteEvent(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	householdID, err := resolveScope(actor)
	if err != nil {
		return err
	}

	if err := srv.eventRepo.Delete(ctx, householdID, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// validateEventTimes enforces event time ordering and reminder consistency.
func validateEventTimes(start time.Time, end *time.Time, reminderEnabled bool, reminderMinutes *int) error {
	if start.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("start_time is required")
	}
	if end != nil && !end.After(start) {
		return domainerrors.ErrValidationFailed.WithDetails("end_time must be after start_time")
	}
	if reminderEnabled && (reminderMinutes == nil || *reminderMinutes < 0) {
		return domainerrors.ErrValidationFailed.WithDetails("reminder_minutes_before must be a non-negative number of minutes")
	}

	return nil
}
