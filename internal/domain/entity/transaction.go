package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	// StatusPending is the initial state of every transaction.
	StatusPending TransactionStatus = "pending"
	// StatusCompleted is terminal.
	StatusCompleted TransactionStatus = "completed"
	// StatusCancelled is terminal.
	StatusCancelled TransactionStatus = "cancelled"
	// StatusFailed is terminal.
	StatusFailed TransactionStatus = "failed"
)

// IsValid checks if the TransactionStatus is a valid value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s TransactionStatus) IsTerminal() bool {
	return s != StatusPending
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// pending may move to any terminal state; terminal states never move.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}

	return next != StatusPending
}

// Transaction records a single money movement inside a household.
// Type is copied from the category at creation time and denormalized
// onto the record so listings do not need a join.
type Transaction struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID // Owning household.
	UserID      uuid.UUID // The user that recorded the transaction.
	CategoryID  uuid.UUID
	Description string
	Amount      float64
	Date        time.Time // Calendar date of the movement.
	Type        TransactionType
	Status      TransactionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
