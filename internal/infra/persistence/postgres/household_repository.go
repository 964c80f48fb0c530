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

// householdRepository implements the repository.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository is the constructor for householdRepository.
func NewHouseholdRepository(db *gorm.DB) repository.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// FindByID retrieves a household by its unique ID, preloading members.
func (repo *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	var householdM model.HouseholdModel

	if err := repo.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&householdM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household by ID")
	}

	return toHouseholdDomain(&householdM), nil
}

// FindByName retrieves a household by its unique name.
func (repo *householdRepository) FindByName(ctx context.Context, name string) (*entity.Household, error) {
	var householdM model.HouseholdModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&householdM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household by name")
	}

	return toHouseholdDomain(&householdM), nil
}

// Create persists a new household.
func (repo *householdRepository) Create(ctx context.Context, household *entity.Household) error {
	householdM := fromHouseholdDomain(household)

	if err := repo.db.WithContext(ctx).Create(householdM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateHouseholdName
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create household")
	}

	household.ID = householdM.ID
	household.CreatedAt = householdM.CreatedAt
	household.UpdatedAt = householdM.UpdatedAt

	return nil
}

// AddMember persists a new membership record.
func (repo *householdRepository) AddMember(ctx context.Context, member *entity.HouseholdMember) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMember
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHouseholdNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add household member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt

	return nil
}

// FindMember retrieves the membership of a user within a household.
func (repo *householdRepository) FindMember(ctx context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error) {
	var memberM model.HouseholdMemberModel

	if err := repo.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find household member")
	}

	return toMemberDomain(&memberM), nil
}

// CountMembers counts the memberships of a household.
func (repo *householdRepository) CountMembers(ctx context.Context, householdID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HouseholdMemberModel{}).
		Where("household_id = ?", householdID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count household members")
	}

	return count, nil
}

// --- Mapper Functions ---

// toHouseholdDomain converts a GORM HouseholdModel to a domain Household entity.
func toHouseholdDomain(data *model.HouseholdModel) *entity.Household {
	if data == nil {
		return nil
	}

	members := make([]*entity.HouseholdMember, 0, len(data.Members))
	for _, memberM := range data.Members {
		members = append(members, toMemberDomain(memberM))
	}

	return &entity.Household{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		Members:   members,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromHouseholdDomain converts a domain Household entity to a GORM HouseholdModel.
// Members are persisted separately through AddMember.
func fromHouseholdDomain(data *entity.Household) *model.HouseholdModel {
	if data == nil {
		return nil
	}

	return &model.HouseholdModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMemberDomain(data *model.HouseholdMemberModel) *entity.HouseholdMember {
	if data == nil {
		return nil
	}

	return &entity.HouseholdMember{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		UserID:      data.UserID,
		Role:        entity.Role(data.Role),
		CreatedAt:   data.CreatedAt,
	}
}

func fromMemberDomain(data *entity.HouseholdMember) *model.HouseholdMemberModel {
	if data == nil {
		return nil
	}

	return &model.HouseholdMemberModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		UserID:      data.UserID,
		Role:        data.Role.String(),
		CreatedAt:   data.CreatedAt,
	}
}
