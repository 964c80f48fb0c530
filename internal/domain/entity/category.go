package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies money movement as spending or earning.
// Categories carry a type, and transactions inherit it at creation time.
type TransactionType string

const (
	// TypeExpense marks outgoing money.
	TypeExpense TransactionType = "expense"
	// TypeIncome marks incoming money.
	TypeIncome TransactionType = "income"
)

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeExpense, TypeIncome:
		return true
	default:
		return false
	}
}

// Category groups transactions of one type within a single household.
type Category struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID // Owning household; never visible across the boundary.
	Name        string
	Type        TransactionType // expense or income
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
