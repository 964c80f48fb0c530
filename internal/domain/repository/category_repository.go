// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found within the
// requested household scope. Cross-household lookups surface the same error
// so a foreign id is indistinguishable from a missing one.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
// Every query is parameterized by the household scope.
type CategoryRepository interface {
	// FindByID retrieves a category by id within a household scope.
	FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Category, error)

	// ListByHousehold retrieves categories of a household, optionally
	// filtered by type when categoryType is non-nil.
	ListByHousehold(ctx context.Context, householdID uuid.UUID, categoryType *entity.TransactionType) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error
}
