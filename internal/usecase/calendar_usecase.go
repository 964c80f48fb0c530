package usecase

import (
	"context"
	"time"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateEventInput defines the data required to create a calendar event.
type CreateEventInput struct {
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               *time.Time
	IsAllDay              bool
	Location              string
	ReminderEnabled       bool
	ReminderMinutesBefore *int
}

// UpdateEventInput defines the mutable fields of an event.
// Nil fields are left untouched.
type UpdateEventInput struct {
	Title                 *string
	Description           *string
	StartTime             *time.Time
	EndTime               *time.Time
	IsAllDay              *bool
	Location              *string
	ReminderEnabled       *bool
	ReminderMinutesBefore *int
}

// CalendarUsecase defines the interface for household calendar operations.
type CalendarUsecase interface {
	// CreateEvent creates an event in the actor's household.
	CreateEvent(ctx context.Context, actor *entity.User, input *CreateEventInput) (*entity.Event, error)

	// GetEvent returns one event within the household scope.
	GetEvent(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Event, error)

	// ListEvents returns household events, optionally bounded to [from, to).
	ListEvents(ctx context.Context, actor *entity.User, from, to *time.Time) ([]*entity.Event, error)

	// UpdateEvent applies partial updates to an event.
	UpdateEvent(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateEventInput) (*entity.Event, error)

	// DeleteEvent removes an event within the household scope.
	DeleteEvent(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
