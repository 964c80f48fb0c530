// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a transaction is not found within
// the requested household scope.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionFilter narrows ListByHousehold results. Nil fields are ignored.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Status     *entity.TransactionStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	Offset     int
	Limit      int
}

// TransactionRepository defines the standard operations for transaction persistence.
// Every query is parameterized by the household scope.
type TransactionRepository interface {
	// FindByID retrieves a transaction by id within a household scope.
	FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Transaction, error)

	// ListByHousehold retrieves transactions of a household ordered by date
	// descending, applying the given filter.
	ListByHousehold(ctx context.Context, householdID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, error)

	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update modifies an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction within a household scope.
	Delete(ctx context.Context, householdID, id uuid.UUID) error
}
