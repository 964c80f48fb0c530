package impl

import (
	"context"
	"log/slog"

	deliverycontext "hearth/internal/delivery/context"
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/repository"
	"hearth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// financeService implements the FinanceUsecase interface.
type financeService struct {
	txManager       repository.TransactionManager
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
	budgetRepo      repository.BudgetRepository
	logger          *slog.Logger
}

// FinanceServiceParams holds dependencies for financeService, injected by Fx.
type FinanceServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CategoryRepo    repository.CategoryRepository
	TransactionRepo repository.TransactionRepository
	BudgetRepo      repository.BudgetRepository
	Logger          *slog.Logger
}

// NewFinanceService is the constructor for financeService.
func NewFinanceService(params FinanceServiceParams) usecase.FinanceUsecase {
	return &financeService{
		txManager:       params.TxManager,
		categoryRepo:    params.CategoryRepo,
		transactionRepo: params.TransactionRepo,
		budgetRepo:      params.BudgetRepo,
		logger:          params.Logger,
	}
}

func (srv *financeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory creates a category in the actor's household.
func (srv *financeService) CreateCategory(ctx context.Context, actor *entity.User, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be expense or income")
	}

	category := &entity.Category{
		HouseholdID: householdID,
		Name:        input.Name,
		Type:        input.Type,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.Any("householdID", householdID))

	return category, nil
}

// ListCategories returns the household's categories, optionally filtered by type.
func (srv *financeService) ListCategories(ctx context.Context, actor *entity.User, categoryType *entity.TransactionType) ([]*entity.Category, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if categoryType != nil && !categoryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be expense or income")
	}

	categories, err := srv.categoryRepo.ListByHousehold(ctx, householdID, categoryType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns one category within the household scope.
func (srv *financeService) GetCategory(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Category, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	return srv.findCategory(ctx, householdID, id)
}

// CreateTransaction records a transaction; its type is copied from the category.
func (srv *financeService) CreateTransaction(ctx context.Context, actor *entity.User, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	category, err := srv.findCategory(ctx, householdID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction := &entity.Transaction{
		HouseholdID: householdID,
		UserID:      actor.ID,
		CategoryID:  category.ID,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		Type:        category.Type,
		Status:      entity.StatusPending,
	}

	if err := srv.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transaction recorded",
		slog.Any("transactionID", transaction.ID),
		slog.Any("householdID", householdID),
		slog.Float64("amount", transaction.Amount))

	return transaction, nil
}

// GetTransaction returns one transaction within the household scope.
func (srv *financeService) GetTransaction(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Transaction, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	transaction, err := srv.transactionRepo.FindByID(ctx, householdID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return transaction, nil
}

// ListTransactions returns household transactions matching the filter.
func (srv *financeService) ListTransactions(ctx context.Context, actor *entity.User, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	transactions, err := srv.transactionRepo.ListByHousehold(ctx, householdID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// UpdateTransaction applies partial updates; status changes must follow the state machine.
func (srv *financeService) UpdateTransaction(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	var updated *entity.Transaction
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.NewTransactionRepository()
		categoryRepo := repoFactory.NewCategoryRepository()

		transaction, err := transactionRepo.FindByID(ctx, householdID, id)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find transaction for update")
		}

		if input.CategoryID != nil && *input.CategoryID != transaction.CategoryID {
			category, err := categoryRepo.FindByID(ctx, householdID, *input.CategoryID)
			if err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrNotFound.WrapMessage("category not found")
				}

				return errors.Wrap(err, "failed to find category for update")
			}
			transaction.CategoryID = category.ID
			transaction.Type = category.Type
		}
		if input.Description != nil {
			transaction.Description = *input.Description
		}
		if input.Amount != nil {
			transaction.Amount = *input.Amount
		}
		if input.Date != nil {
			transaction.Date = *input.Date
		}
		if input.Status != nil && *input.Status != transaction.Status {
			if !transaction.Status.CanTransitionTo(*input.Status) {
				return domainerrors.ErrValidationFailed.WithDetails(
					"invalid status transition from " + string(transaction.Status) + " to " + string(*input.Status))
			}
			transaction.Status = *input.Status
		}

		if err := transactionRepo.Update(ctx, transaction); err != nil {
			return err
		}

		updated = transaction

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTransaction removes a transaction within the household scope.
func (srv *financeService) DeleteTransaction(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	householdID, err := resolveScope(actor)
	if err != nil {
		return err
	}

	if err := srv.transactionRepo.Delete(ctx, householdID, id); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// UpsertBudget creates or replaces the budget for a category and month.
// The last write wins when a budget already exists for the period.
func (srv *financeService) UpsertBudget(ctx context.Context, actor *entity.User, input *usecase.UpsertBudgetInput) (*entity.Budget, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, domainerrors.ErrMonthOutOfRange
	}

	var result *entity.Budget
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()
		budgetRepo := repoFactory.NewBudgetRepository()

		category, err := categoryRepo.FindByID(ctx, householdID, input.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to find category for budget")
		}

		if category.Type != entity.TypeExpense {
			return domainerrors.ErrBudgetCategoryNotExpense
		}

		existing, err := budgetRepo.FindByPeriod(ctx, householdID, category.ID, input.Month, input.Year)
		if err != nil && !errors.Is(err, repository.ErrBudgetNotFound) {
			return errors.Wrap(err, "failed to find budget for period")
		}

		if existing != nil {
			existing.Threshold = input.Threshold
			if err := budgetRepo.Update(ctx, existing); err != nil {
				return err
			}
			result = existing

			return nil
		}

		budget := &entity.Budget{
			HouseholdID: householdID,
			CategoryID:  category.ID,
			Threshold:   input.Threshold,
			Month:       input.Month,
			Year:        input.Year,
		}
		if err := budgetRepo.Create(ctx, budget); err != nil {
			return err
		}
		result = budget

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Budget upserted",
		slog.Any("budgetID", result.ID),
		slog.Int("month", result.Month),
		slog.Int("year", result.Year))

	return result, nil
}

// ListBudgets returns household budgets, optionally filtered by month and year.
func (srv *financeService) ListBudgets(ctx context.Context, actor *entity.User, month, year *int) ([]*entity.Budget, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	if month != nil && (*month < 1 || *month > 12) {
		return nil, domainerrors.ErrMonthOutOfRange
	}

	budgets, err := srv.budgetRepo.ListByHousehold(ctx, householdID, month, year)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budgets")
	}

	return budgets, nil
}

// DeleteBudget removes a budget within the household scope.
func (srv *financeService) DeleteBudget(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	householdID, err := resolveScope(actor)
	if err != nil {
		return err
	}

	if err := srv.budgetRepo.Delete(ctx, householdID, id); err != nil {
		if errors.Is(err, repository.ErrBudgetNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// findCategory loads a category within the household scope.
func (srv *financeService) findCategory(ctx context.Context, householdID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, householdID, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}
