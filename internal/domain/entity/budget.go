package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget sets a spending threshold for one category in one month.
// Unique per (category, month, year); only expense categories may carry one.
type Budget struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	CategoryID  uuid.UUID
	Threshold   float64
	Month       int // 1..12
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
