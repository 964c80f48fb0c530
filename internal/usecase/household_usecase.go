package usecase

import (
	"context"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateHouseholdInput defines the data required to create a household.
type CreateHouseholdInput struct {
	Name string
}

// InviteMemberInput defines the data required to invite a member by email.
type InviteMemberInput struct {
	Email string
}

// --- Output DTOs ---

// InvitationOutput pairs an invitation with its acceptance URL.
type InvitationOutput struct {
	Invitation    *entity.HouseholdInvitation
	InvitationURL string
}

// HouseholdUsecase defines the interface for household and invitation operations.
type HouseholdUsecase interface {
	// CreateHousehold creates a household and atomically makes the creator
	// its admin member. Fails when the actor already belongs to a household.
	CreateHousehold(ctx context.Context, actor *entity.User, input *CreateHouseholdInput) (*entity.Household, error)

	// GetMyHousehold returns the actor's household with members preloaded.
	GetMyHousehold(ctx context.Context, actor *entity.User) (*entity.Household, error)

	// InviteMember issues a pending invitation for an email address.
	// Household admin only.
	InviteMember(ctx context.Context, actor *entity.User, input *InviteMemberInput) (*InvitationOutput, error)

	// ListInvitations returns all invitations of the actor's household.
	// Household admin only.
	ListInvitations(ctx context.Context, actor *entity.User) ([]*entity.HouseholdInvitation, error)

	// AcceptInvitation redeems a pending invitation token, joining the actor
	// to the inviting household as a member.
	AcceptInvitation(ctx context.Context, actor *entity.User, token string) (*entity.Household, error)

	// RevokeInvitation moves a pending invitation to revoked. Household admin only.
	RevokeInvitation(ctx context.Context, actor *entity.User, invitationID uuid.UUID) error

	// InvitationQR renders the acceptance URL of a pending invitation as a
	// PNG QR code. Household admin only.
	InvitationQR(ctx context.Context, actor *entity.User, invitationID uuid.UUID) ([]byte, error)
}
