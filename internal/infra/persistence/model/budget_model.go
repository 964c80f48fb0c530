package model

import (
	"time"

	"github.com/google/uuid"
)

// BudgetModel is the GORM-specific struct for the 'budgets' table.
// A budget is unique per (household, category, month, year).
type BudgetModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_budget_period"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_budget_period"`
	Threshold   float64   `gorm:"type:numeric(14,2);not null"`
	Month       int       `gorm:"not null;uniqueIndex:idx_budget_period;check:month >= 1 AND month <= 12"`
	Year        int       `gorm:"not null;uniqueIndex:idx_budget_period"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BudgetModel) TableName() string {
	return "budgets"
}
