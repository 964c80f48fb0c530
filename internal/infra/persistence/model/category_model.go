package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Category names are unique per household and type.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_household_category_name"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_household_category_name"`
	Type        string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_household_category_name"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
