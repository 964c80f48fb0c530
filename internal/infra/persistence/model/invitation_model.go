package model

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdInvitationModel is the GORM-specific struct for the 'household_invitations' table.
type HouseholdInvitationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	Token       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HouseholdInvitationModel) TableName() string {
	return "household_invitations"
}
