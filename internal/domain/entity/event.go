package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a household calendar entry.
type Event struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID // Owning household.
	CreatedBy   uuid.UUID // The user that created the event.
	Title       string
	Description string
	StartTime   time.Time
	EndTime     *time.Time // nil for open-ended or all-day events.
	IsAllDay    bool
	Location    string

	// Reminder settings.
	ReminderEnabled       bool
	ReminderMinutesBefore *int // Minutes before StartTime; nil when no reminder.

	CreatedAt time.Time
	UpdatedAt time.Time
}
