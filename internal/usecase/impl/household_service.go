package impl

import (
	"context"
	"log/slog"

	deliverycontext "hearth/internal/delivery/context"
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/policy"
	"hearth/internal/domain/repository"
	"hearth/internal/domain/service"
	"hearth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// householdService implements the HouseholdUsecase interface.
type householdService struct {
	txManager      repository.TransactionManager
	householdRepo  repository.HouseholdRepository
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// HouseholdServiceParams holds dependencies for householdService, injected by Fx.
type HouseholdServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	HouseholdRepo  repository.HouseholdRepository
	InvitationRepo repository.InvitationRepository
	UserRepo       repository.UserRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewHouseholdService is the constructor for householdService.
func NewHouseholdService(params HouseholdServiceParams) usecase.HouseholdUsecase {
	return &householdService{
		txManager:      params.TxManager,
		householdRepo:  params.HouseholdRepo,
		invitationRepo: params.InvitationRepo,
		userRepo:       params.UserRepo,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (srv *householdService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateHousehold creates a household and atomically makes the creator its admin member.
func (srv *householdService) CreateHousehold(ctx context.Context, actor *entity.User, input *usecase.CreateHouseholdInput) (*entity.Household, error) {
	if actor == nil {
		return nil, domainerrors.ErrPermissionDenied
	}
	if actor.InHousehold() {
		return nil, domainerrors.ErrAlreadyInHousehold
	}

	var created *entity.Household
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		householdRepo := repoFactory.NewHouseholdRepository()
		userRepo := repoFactory.NewUserRepository()

		household := &entity.Household{
			Name:      input.Name,
			CreatedBy: actor.ID,
		}
		if err := householdRepo.Create(ctx, household); err != nil {
			if errors.Is(err, repository.ErrDuplicateHouseholdName) {
				return domainerrors.ErrHouseholdNameTaken
			}

			return err
		}

		member := &entity.HouseholdMember{
			HouseholdID: household.ID,
			UserID:      actor.ID,
			Role:        entity.RoleAdmin,
		}
		if err := householdRepo.AddMember(ctx, member); err != nil {
			return err
		}

		actor.HouseholdID = &household.ID
		if err := userRepo.Update(ctx, actor); err != nil {
			return errors.Wrap(err, "failed to attach creator to household")
		}

		household.Members = []*entity.HouseholdMember{member}
		created = household

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Household created", slog.Any("householdID", created.ID), slog.Any("creatorID", actor.ID))

	return created, nil
}

// GetMyHousehold returns the actor's household with members preloaded.
func (srv *householdService) GetMyHousehold(ctx context.Context, actor *entity.User) (*entity.Household, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return nil, err
	}

	household, err := srv.householdRepo.FindByID(ctx, householdID)
	if err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find household")
	}

	return household, nil
}

// InviteMember issues a pending invitation for an email address. Household admin only.
func (srv *householdService) InviteMember(ctx context.Context, actor *entity.User, input *usecase.InviteMemberInput) (*usecase.InvitationOutput, error) {
	householdID, err := srv.requireHouseholdAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}

	invitation := &entity.HouseholdInvitation{
		HouseholdID: householdID,
		Email:       input.Email,
		Token:       uuid.NewString(),
		Status:      entity.InvitationPending,
	}

	if err := srv.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Invitation created",
		slog.Any("invitationID", invitation.ID),
		slog.Any("householdID", householdID),
		slog.String("email", input.Email))

	return &usecase.InvitationOutput{
		Invitation:    invitation,
		InvitationURL: srv.qrcodeService.InvitationURL(invitation.Token),
	}, nil
}

// ListInvitations returns all invitations of the actor's household. Household admin only.
func (srv *householdService) ListInvitations(ctx context.Context, actor *entity.User) ([]*entity.HouseholdInvitation, error) {
	householdID, err := srv.requireHouseholdAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}

	invitations, err := srv.invitationRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invitations")
	}

	return invitations, nil
}

// AcceptInvitation redeems a pending invitation token, joining the actor to the household.
func (srv *householdService) AcceptInvitation(ctx context.Context, actor *entity.User, token string) (*entity.Household, error) {
	if actor == nil {
		return nil, domainerrors.ErrPermissionDenied
	}
	if actor.InHousehold() {
		return nil, domainerrors.ErrAlreadyInHousehold
	}

	var joined *entity.Household
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.NewInvitationRepository()
		householdRepo := repoFactory.NewHouseholdRepository()
		userRepo := repoFactory.NewUserRepository()

		invitation, err := invitationRepo.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find invitation by token")
		}

		if !invitation.Status.CanTransitionTo(entity.InvitationAccepted) {
			return domainerrors.ErrInvitationNotPending
		}

		if err := invitationRepo.UpdateStatus(ctx, invitation.ID, entity.InvitationAccepted); err != nil {
			return err
		}

		member := &entity.HouseholdMember{
			HouseholdID: invitation.HouseholdID,
			UserID:      actor.ID,
			Role:        entity.RoleMember,
		}
		if err := householdRepo.AddMember(ctx, member); err != nil {
			if errors.Is(err, repository.ErrDuplicateMember) {
				return domainerrors.ErrAlreadyInHousehold
			}

			return err
		}

		actor.HouseholdID = &invitation.HouseholdID
		if err := userRepo.Update(ctx, actor); err != nil {
			return errors.Wrap(err, "failed to attach invitee to household")
		}

		joined, err = householdRepo.FindByID(ctx, invitation.HouseholdID)
		if err != nil {
			return errors.Wrap(err, "failed to load joined household")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Invitation accepted", slog.Any("householdID", joined.ID), slog.Any("userID", actor.ID))

	return joined, nil
}

// RevokeInvitation moves a pending invitation to revoked. Household admin only.
func (srv *householdService) RevokeInvitation(ctx context.Context, actor *entity.User, invitationID uuid.UUID) error {
	householdID, err := srv.requireHouseholdAdmin(ctx, actor)
	if err != nil {
		return err
	}

	invitation, err := srv.findHouseholdInvitation(ctx, householdID, invitationID)
	if err != nil {
		return err
	}

	if !invitation.Status.CanTransitionTo(entity.InvitationRevoked) {
		return domainerrors.ErrInvitationNotPending
	}

	if err := srv.invitationRepo.UpdateStatus(ctx, invitation.ID, entity.InvitationRevoked); err != nil {
		return err
	}

	srv.log(ctx).Info("Invitation revoked", slog.Any("invitationID", invitationID), slog.Any("actorID", actor.ID))

	return nil
}

// InvitationQR renders the acceptance URL of a pending invitation as a PNG QR code.
func (srv *householdService) InvitationQR(ctx context.Context, actor *entity.User, invitationID uuid.UUID) ([]byte, error) {
	householdID, err := srv.requireHouseholdAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}

	invitation, err := srv.findHouseholdInvitation(ctx, householdID, invitationID)
	if err != nil {
		return nil, err
	}

	if invitation.Status != entity.InvitationPending {
		return nil, domainerrors.ErrInvitationNotPending
	}

	png, err := srv.qrcodeService.GenerateInvitationQR(invitation.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invitation QR code")
	}

	return png, nil
}

// requireHouseholdAdmin resolves the actor's household and checks the actor
// holds the admin role within it.
func (srv *householdService) requireHouseholdAdmin(ctx context.Context, actor *entity.User) (uuid.UUID, error) {
	householdID, err := resolveScope(actor)
	if err != nil {
		return uuid.Nil, err
	}

	member, err := srv.householdRepo.FindMember(ctx, householdID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return uuid.Nil, domainerrors.ErrPermissionDenied
		}

		return uuid.Nil, errors.Wrap(err, "failed to find household membership")
	}

	if err := policy.RequireHouseholdAdmin(member); err != nil {
		return uuid.Nil, err
	}

	return householdID, nil
}

// findHouseholdInvitation loads an invitation and verifies it belongs to the household.
// A foreign invitation is indistinguishable from a missing one.
func (srv *householdService) findHouseholdInvitation(ctx context.Context, householdID, invitationID uuid.UUID) (*entity.HouseholdInvitation, error) {
	invitation, err := srv.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	if invitation.HouseholdID != householdID {
		return nil, domainerrors.ErrNotFound
	}

	return invitation, nil
}

// resolveScope returns the actor's household id or fails when the actor has none.
func resolveScope(actor *entity.User) (uuid.UUID, error) {
	if actor == nil {
		return uuid.Nil, domainerrors.ErrPermissionDenied
	}
	if !actor.InHousehold() {
		return uuid.Nil, domainerrors.ErrNoHousehold
	}

	return *actor.HouseholdID, nil
}
