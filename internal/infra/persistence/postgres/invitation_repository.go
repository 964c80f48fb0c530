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

// invitationRepository implements the repository.InvitationRepository interface.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{
		db: db,
	}
}

// FindByID retrieves an invitation by its unique ID.
func (repo *invitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HouseholdInvitation, error) {
	var invitationM model.HouseholdInvitationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by ID")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindByToken retrieves an invitation by its unique opaque token.
func (repo *invitationRepository) FindByToken(ctx context.Context, token string) (*entity.HouseholdInvitation, error) {
	var invitationM model.HouseholdInvitationModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by token")
	}

	return toInvitationDomain(&invitationM), nil
}

// ListByHousehold retrieves all invitations issued for a household.
func (repo *invitationRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*entity.HouseholdInvitation, error) {
	var invitationModels []*model.HouseholdInvitationModel

	if err := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at DESC").
		Find(&invitationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invitations by household")
	}

	invitations := make([]*entity.HouseholdInvitation, 0, len(invitationModels))
	for _, invitationM := range invitationModels {
		invitations = append(invitations, toInvitationDomain(invitationM))
	}

	return invitations, nil
}

// Create persists a new invitation.
func (repo *invitationRepository) Create(ctx context.Context, invitation *entity.HouseholdInvitation) error {
	invitationM := fromInvitationDomain(invitation)

	if err := repo.db.WithContext(ctx).Create(invitationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHouseholdNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	invitation.ID = invitationM.ID
	invitation.CreatedAt = invitationM.CreatedAt
	invitation.UpdatedAt = invitationM.UpdatedAt

	return nil
}

// UpdateStatus records a state transition.
func (repo *invitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HouseholdInvitationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invitation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInvitationDomain(data *model.HouseholdInvitationModel) *entity.HouseholdInvitation {
	if data == nil {
		return nil
	}

	return &entity.HouseholdInvitation{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Email:       data.Email,
		Token:       data.Token,
		Status:      entity.InvitationStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromInvitationDomain(data *entity.HouseholdInvitation) *model.HouseholdInvitationModel {
	if data == nil {
		return nil
	}

	return &model.HouseholdInvitationModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Email:       data.Email,
		Token:       data.Token,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
