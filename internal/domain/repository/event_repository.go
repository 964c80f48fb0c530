// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when a calendar event is not found within the
// requested household scope.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for calendar event persistence.
// Every query is parameterized by the household scope.
type EventRepository interface {
	// FindByID retrieves an event by id within a household scope.
	FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Event, error)

	// ListByHousehold retrieves events of a household ordered by start time,
	// optionally bounded to the [from, to) window when non-nil.
	ListByHousehold(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]*entity.Event, error)

	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// Update modifies an existing event.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event within a household scope.
	Delete(ctx context.Context, householdID, id uuid.UUID) error
}
