package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel is the GORM-specific struct for the 'transactions' table.
// Type is denormalized from the category at creation time.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_household_date"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(500);not null"`
	Amount      float64   `gorm:"type:numeric(14,2);not null"`
	Date        time.Time `gorm:"not null;index:idx_transactions_household_date"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
