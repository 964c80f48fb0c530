// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBudgetNotFound is returned when a budget is not found within the
// requested household scope.
var ErrBudgetNotFound = errors.New("budget not found")

// BudgetRepository defines the standard operations for budget persistence.
// A budget is unique per (household, category, month, year).
type BudgetRepository interface {
	// FindByID retrieves a budget by id within a household scope.
	FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Budget, error)

	// FindByPeriod retrieves the budget for a category in a given month and year.
	FindByPeriod(ctx context.Context, householdID, categoryID uuid.UUID, month, year int) (*entity.Budget, error)

	// ListByHousehold retrieves budgets of a household, optionally filtered
	// by month and year when non-nil.
	ListByHousehold(ctx context.Context, householdID uuid.UUID, month, year *int) ([]*entity.Budget, error)

	// Create persists a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// Update modifies an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget within a household scope.
	Delete(ctx context.Context, householdID, id uuid.UUID) error
}
