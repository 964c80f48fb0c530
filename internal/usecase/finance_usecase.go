package usecase

import (
	"context"
	"time"

	"hearth/internal/domain/entity"
	"hearth/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string
	Type entity.TransactionType
}

// CreateTransactionInput defines the data required to record a transaction.
// The type is derived from the category, never supplied by the caller.
type CreateTransactionInput struct {
	CategoryID  uuid.UUID
	Description string
	Amount      float64
	Date        time.Time
}

// UpdateTransactionInput defines the mutable fields of a transaction.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	CategoryID  *uuid.UUID
	Description *string
	Amount      *float64
	Date        *time.Time
	Status      *entity.TransactionStatus
}

// UpsertBudgetInput defines the data required to set a budget threshold.
// Writing over an existing (category, month, year) replaces the threshold.
type UpsertBudgetInput struct {
	CategoryID uuid.UUID
	Threshold  float64
	Month      int
	Year       int
}

// FinanceUsecase defines the interface for category, transaction, and budget
// operations. All operations are scoped to the actor's household.
type FinanceUsecase interface {
	// CreateCategory creates a category in the actor's household.
	CreateCategory(ctx context.Context, actor *entity.User, input *CreateCategoryInput) (*entity.Category, error)

	// ListCategories returns the household's categories, optionally filtered by type.
	ListCategories(ctx context.Context, actor *entity.User, categoryType *entity.TransactionType) ([]*entity.Category, error)

	// GetCategory returns one category within the household scope.
	GetCategory(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Category, error)

	// CreateTransaction records a transaction; its type is copied from the category.
	CreateTransaction(ctx context.Context, actor *entity.User, input *CreateTransactionInput) (*entity.Transaction, error)

	// GetTransaction returns one transaction within the household scope.
	GetTransaction(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Transaction, error)

	// ListTransactions returns household transactions matching the filter.
	ListTransactions(ctx context.Context, actor *entity.User, filter repository.TransactionFilter) ([]*entity.Transaction, error)

	// UpdateTransaction applies partial updates; status changes must follow
	// the transaction state machine.
	UpdateTransaction(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateTransactionInput) (*entity.Transaction, error)

	// DeleteTransaction removes a transaction within the household scope.
	DeleteTransaction(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// UpsertBudget creates or replaces the budget for a category and month.
	// Only expense categories may carry budgets.
	UpsertBudget(ctx context.Context, actor *entity.User, input *UpsertBudgetInput) (*entity.Budget, error)

	// ListBudgets returns household budgets, optionally filtered by month and year.
	ListBudgets(ctx context.Context, actor *entity.User, month, year *int) ([]*entity.Budget, error)

	// DeleteBudget removes a budget within the household scope.
	DeleteBudget(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
