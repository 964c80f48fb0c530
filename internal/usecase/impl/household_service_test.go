package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/usecase"
)

func newHouseholdService(store *fakeStore) usecase.HouseholdUsecase {
	return NewHouseholdService(HouseholdServiceParams{
		TxManager:      &fakeTxManager{store: store},
		HouseholdRepo:  &fakeHouseholdRepo{store: store},
		InvitationRepo: &fakeInvitationRepo{store: store},
		UserRepo:       &fakeUserRepo{store: store},
		QRCodeService:  fakeQRCodeService{},
		Logger:         testLogger(),
	})
}

// seedHousehold creates a household with the given user as its admin member
// and refreshes the user's scope.
func seedHousehold(t *testing.T, store *fakeStore, svc usecase.HouseholdUsecase, creator *entity.User, name string) *entity.Household {
	t.Helper()
	household, err := svc.CreateHousehold(context.Background(), creator, &usecase.CreateHouseholdInput{Name: name})
	require.NoError(t, err)
	return household
}

func TestHouseholdService_CreateHousehold(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)

	household, err := svc.CreateHousehold(context.Background(), creator, &usecase.CreateHouseholdInput{Name: "The Does"})
	require.NoError(t, err)

	assert.Equal(t, "The Does", household.Name)
	assert.Equal(t, creator.ID, household.CreatedBy)
	require.Len(t, household.Members, 1)
	assert.Equal(t, creator.ID, household.Members[0].UserID)
	assert.Equal(t, entity.RoleAdmin, household.Members[0].Role)

	// The creator's scope is attached in the same transaction.
	require.NotNil(t, creator.HouseholdID)
	assert.Equal(t, household.ID, *creator.HouseholdID)

	stored, err := (&fakeUserRepo{store: store}).FindByID(context.Background(), creator.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.HouseholdID)
	assert.Equal(t, household.ID, *stored.HouseholdID)
}

func TestHouseholdService_CreateHousehold_AlreadyInHousehold(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "First")

	_, err := svc.CreateHousehold(context.Background(), creator, &usecase.CreateHouseholdInput{Name: "Second"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInHousehold)
}

func TestHouseholdService_CreateHousehold_NameTaken(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	other := seedUser(t, store, "other@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")

	_, err := svc.CreateHousehold(context.Background(), other, &usecase.CreateHouseholdInput{Name: "The Does"})
	assert.ErrorIs(t, err, domainerrors.ErrHouseholdNameTaken)
}

func TestHouseholdService_GetMyHousehold(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	household := seedHousehold(t, store, svc, creator, "The Does")

	got, err := svc.GetMyHousehold(context.Background(), creator)
	require.NoError(t, err)
	assert.Equal(t, household.ID, got.ID)
	assert.Len(t, got.Members, 1)
}

func TestHouseholdService_GetMyHousehold_NoHousehold(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	loner := seedUser(t, store, "loner@example.com", entity.RoleMember, true)

	_, err := svc.GetMyHousehold(context.Background(), loner)
	assert.ErrorIs(t, err, domainerrors.ErrNoHousehold)
}

func TestHouseholdService_InviteMember(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	household := seedHousehold(t, store, svc, creator, "The Does")

	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "invitee@example.com"})
	require.NoError(t, err)

	assert.Equal(t, household.ID, out.Invitation.HouseholdID)
	assert.Equal(t, "invitee@example.com", out.Invitation.Email)
	assert.Equal(t, entity.InvitationPending, out.Invitation.Status)
	assert.NotEmpty(t, out.Invitation.Token)
	assert.Contains(t, out.InvitationURL, out.Invitation.Token)
}

func TestHouseholdService_InviteMember_NonAdminDenied(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	household := seedHousehold(t, store, svc, creator, "The Does")

	// A plain member of the household is not allowed to invite.
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)
	member.HouseholdID = &household.ID
	require.NoError(t, (&fakeUserRepo{store: store}).Update(context.Background(), member))
	require.NoError(t, (&fakeHouseholdRepo{store: store}).AddMember(context.Background(), &entity.HouseholdMember{
		HouseholdID: household.ID,
		UserID:      member.ID,
		Role:        entity.RoleMember,
	}))

	_, err := svc.InviteMember(context.Background(), member, &usecase.InviteMemberInput{Email: "x@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestHouseholdService_AcceptInvitation(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	household := seedHousehold(t, store, svc, creator, "The Does")
	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "invitee@example.com"})
	require.NoError(t, err)

	invitee := seedUser(t, store, "invitee@example.com", entity.RoleMember, true)

	joined, err := svc.AcceptInvitation(context.Background(), invitee, out.Invitation.Token)
	require.NoError(t, err)
	assert.Equal(t, household.ID, joined.ID)
	assert.Len(t, joined.Members, 2)

	require.NotNil(t, invitee.HouseholdID)
	assert.Equal(t, household.ID, *invitee.HouseholdID)

	// The invitation is consumed.
	invitation, err := (&fakeInvitationRepo{store: store}).FindByID(context.Background(), out.Invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationAccepted, invitation.Status)
}

func TestHouseholdService_AcceptInvitation_UnknownToken(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	invitee := seedUser(t, store, "invitee@example.com", entity.RoleMember, true)

	_, err := svc.AcceptInvitation(context.Background(), invitee, "no-such-token")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestHouseholdService_AcceptInvitation_NotPending(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")
	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "invitee@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.RevokeInvitation(context.Background(), creator, out.Invitation.ID))

	invitee := seedUser(t, store, "invitee@example.com", entity.RoleMember, true)

	_, err = svc.AcceptInvitation(context.Background(), invitee, out.Invitation.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvitationNotPending)
}

func TestHouseholdService_AcceptInvitation_AlreadyInHousehold(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")
	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "creator@example.com"})
	require.NoError(t, err)

	_, err = svc.AcceptInvitation(context.Background(), creator, out.Invitation.Token)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInHousehold)
}

func TestHouseholdService_RevokeInvitation_Twice(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")
	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "invitee@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeInvitation(context.Background(), creator, out.Invitation.ID))

	// Terminal states never transition again.
	err = svc.RevokeInvitation(context.Background(), creator, out.Invitation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvitationNotPending)
}

func TestHouseholdService_RevokeInvitation_ForeignHousehold(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")
	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "invitee@example.com"})
	require.NoError(t, err)

	outsider := seedUser(t, store, "outsider@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, outsider, "The Others")

	// A foreign invitation is indistinguishable from a missing one.
	err = svc.RevokeInvitation(context.Background(), outsider, out.Invitation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestHouseholdService_ListInvitations(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: email})
		require.NoError(t, err)
	}

	invitations, err := svc.ListInvitations(context.Background(), creator)
	require.NoError(t, err)
	assert.Len(t, invitations, 2)
}

func TestHouseholdService_InvitationQR(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")
	out, err := svc.InviteMember(context.Background(), creator, &usecase.InviteMemberInput{Email: "invitee@example.com"})
	require.NoError(t, err)

	png, err := svc.InvitationQR(context.Background(), creator, out.Invitation.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	require.NoError(t, svc.RevokeInvitation(context.Background(), creator, out.Invitation.ID))

	_, err = svc.InvitationQR(context.Background(), creator, out.Invitation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvitationNotPending)
}

func TestHouseholdService_InvitationQR_Unknown(t *testing.T) {
	store := newFakeStore()
	svc := newHouseholdService(store)
	creator := seedUser(t, store, "creator@example.com", entity.RoleMember, true)
	seedHousehold(t, store, svc, creator, "The Does")

	_, err := svc.InvitationQR(context.Background(), creator, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
