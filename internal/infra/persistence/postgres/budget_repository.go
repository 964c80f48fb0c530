package postgres

import (
	"context"

	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/repository"
	"hearth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// budgetRepository implements the repository.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository is the constructor for budgetRepository.
func NewBudgetRepository(db *gorm.DB) repository.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByID retrieves a budget by id within a household scope.
func (repo *budgetRepository) FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Budget, error) {
	var budgetM model.BudgetModel

	if err := repo.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		First(&budgetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBudgetNotFound
		}

		return nil, errors.Wrap(err, "failed to find budget by ID")
	}

	return toBudgetDomain(&budgetM), nil
}

// FindByPeriod retrieves the budget for a category in a given month and year.
func (repo *budgetRepository) FindByPeriod(ctx context.Context, householdID, categoryID uuid.UUID, month, year int) (*entity.Budget, error) {
	var budgetM model.BudgetModel

	if err := repo.db.WithContext(ctx).
		Where("household_id = ? AND category_id = ? AND month = ? AND year = ?", householdID, categoryID, month, year).
		First(&budgetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBudgetNotFound
		}

		return nil, errors.Wrap(err, "failed to find budget by period")
	}

	return toBudgetDomain(&budgetM), nil
}

// ListByHousehold retrieves budgets of a household, optionally filtered by month and year.
func (repo *budgetRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, month, year *int) ([]*entity.Budget, error) {
	var budgetModels []*model.BudgetModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID)
	if month != nil {
		query = query.Where("month = ?", *month)
	}
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	if err := query.
		Order("year DESC, month DESC").
		Find(&budgetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list budgets by household")
	}

	budgets := make([]*entity.Budget, 0, len(budgetModels))
	for _, budgetM := range budgetModels {
		budgets = append(budgets, toBudgetDomain(budgetM))
	}

	return budgets, nil
}

// Create persists a new budget.
func (repo *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetM := fromBudgetDomain(budget)

	if err := repo.db.WithContext(ctx).Create(budgetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrMonthOutOfRange
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create budget")
	}

	budget.ID = budgetM.ID
	budget.CreatedAt = budgetM.CreatedAt
	budget.UpdatedAt = budgetM.UpdatedAt

	return nil
}

// Update modifies an existing budget.
func (repo *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("household_id = ? AND id = ?", budget.HouseholdID, budget.ID).
		Update("threshold", budget.Threshold)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update budget")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBudgetNotFound
	}

	return nil
}

// Delete removes a budget within a household scope.
func (repo *budgetRepository) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		Delete(&model.BudgetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete budget")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBudgetNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBudgetDomain(data *model.BudgetModel) *entity.Budget {
	if data == nil {
		return nil
	}

	return &entity.Budget{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		CategoryID:  data.CategoryID,
		Threshold:   data.Threshold,
		Month:       data.Month,
		Year:        data.Year,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBudgetDomain(data *entity.Budget) *model.BudgetModel {
	if data == nil {
		return nil
	}

	return &model.BudgetModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		CategoryID:  data.CategoryID,
		Threshold:   data.Threshold,
		Month:       data.Month,
		Year:        data.Year,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
