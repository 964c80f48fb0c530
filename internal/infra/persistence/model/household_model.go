package model

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdModel is the GORM-specific struct for the 'households' table.
type HouseholdModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Members []*HouseholdMemberModel `gorm:"foreignKey:HouseholdID"`
}

// TableName explicitly sets the table name for GORM.
func (HouseholdModel) TableName() string {
	return "households"
}

// HouseholdMemberModel is the GORM-specific struct for the 'household_members' table.
// The (household_id, user_id) pair is unique.
type HouseholdMemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_household_user"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_household_user"`
	Role        string    `gorm:"type:varchar(20);not null;default:'member'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HouseholdMemberModel) TableName() string {
	return "household_members"
}
