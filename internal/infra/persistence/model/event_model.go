package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID           uuid.UUID `gorm:"type:uuid;not null;index:idx_events_household_start"`
	CreatedBy             uuid.UUID `gorm:"type:uuid;not null;index"`
	Title                 string    `gorm:"type:varchar(255);not null"`
	Description           string    `gorm:"type:text"`
	StartTime             time.Time `gorm:"not null;index:idx_events_household_start"`
	EndTime               *time.Time
	IsAllDay              bool   `gorm:"not null;default:false"`
	Location              string `gorm:"type:varchar(255)"`
	ReminderEnabled       bool   `gorm:"not null;default:false"`
	ReminderMinutesBefore *int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
