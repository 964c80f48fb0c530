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

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindByID retrieves a transaction by id within a household scope.
func (repo *transactionRepository) FindByID(ctx context.Context, householdID, id uuid.UUID) (*entity.Transaction, error) {
	var transactionM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by ID")
	}

	return toTransactionDomain(&transactionM), nil
}

// ListByHousehold retrieves transactions of a household ordered by date descending.
func (repo *transactionRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", *filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.
		Order("date DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by household")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// Create persists a new transaction.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

// Update modifies an existing transaction.
func (repo *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("household_id = ? AND id = ?", transaction.HouseholdID, transaction.ID).
		Updates(map[string]any{
			"category_id": transaction.CategoryID,
			"description": transaction.Description,
			"amount":      transaction.Amount,
			"date":        transaction.Date,
			"type":        transaction.Type.String(),
			"status":      string(transaction.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction within a household scope.
func (repo *transactionRepository) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		Delete(&model.TransactionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		UserID:      data.UserID,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		Amount:      data.Amount,
		Date:        data.Date,
		Type:        entity.TransactionType(data.Type),
		Status:      entity.TransactionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		UserID:      data.UserID,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		Amount:      data.Amount,
		Date:        data.Date,
		Type:        data.Type.String(),
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
