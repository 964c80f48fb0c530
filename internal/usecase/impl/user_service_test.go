package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/config"
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/usecase"
)

func newUserService(store *fakeStore, cfg *config.Config) usecase.UserUsecase {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{store: store},
		UserRepo:     &fakeUserRepo{store: store},
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		Config:       cfg,
		Logger:       testLogger(),
	})
}

func seedUser(t *testing.T, store *fakeStore, email string, role entity.Role, active bool) *entity.User {
	t.Helper()
	user := &entity.User{
		Email:        email,
		FullName:     "Seeded User",
		PasswordHash: "hashed:correct-password",
		IsActive:     active,
		Role:         role,
	}
	require.NoError(t, (&fakeUserRepo{store: store}).Create(context.Background(), user))
	return user
}

func TestUserService_Register(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "correct-password",
		FullName: "Alice",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, entity.RoleMember, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, "hashed:correct-password", user.PasswordHash)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	svc := newUserService(newFakeStore(), nil)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "short",
		FullName: "Alice",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	seedUser(t, store, "alice@example.com", entity.RoleMember, true)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "correct-password",
		FullName: "Alice Again",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	user := seedUser(t, store, "alice@example.com", entity.RoleMember, true)

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-alice@example.com", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserService_Login_BadPassword(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	seedUser(t, store, "alice@example.com", entity.RoleMember, true)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := newUserService(newFakeStore(), nil)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-password",
	})
	// Unknown subjects look identical to bad passwords.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	seedUser(t, store, "alice@example.com", entity.RoleMember, false)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestUserService_GetUser_Permissions(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	admin := seedUser(t, store, "admin@example.com", entity.RoleAdmin, true)
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)
	other := seedUser(t, store, "other@example.com", entity.RoleMember, true)

	// Members may read themselves.
	got, err := svc.GetUser(context.Background(), member, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)

	// Members may not read others.
	_, err = svc.GetUser(context.Background(), member, other.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// Admins may read anyone.
	got, err = svc.GetUser(context.Background(), admin, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	admin := seedUser(t, store, "admin@example.com", entity.RoleAdmin, true)

	_, err := svc.GetUser(context.Background(), admin, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_AdminOnly(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	admin := seedUser(t, store, "admin@example.com", entity.RoleAdmin, true)
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)

	_, err := svc.ListUsers(context.Background(), member, 0, 10)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	users, err := svc.ListUsers(context.Background(), admin, 0, 10)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateMe(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)

	newName := "Renamed"
	newPassword := "next-password"
	updated, err := svc.UpdateMe(context.Background(), member, &usecase.UpdateMeInput{
		FullName: &newName,
		Password: &newPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.FullName)
	assert.Equal(t, "hashed:next-password", updated.PasswordHash)
	// Untouched fields survive.
	assert.Equal(t, "member@example.com", updated.Email)
}

func TestUserService_UpdateMe_EmailTaken(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)
	seedUser(t, store, "taken@example.com", entity.RoleMember, true)

	taken := "taken@example.com"
	_, err := svc.UpdateMe(context.Background(), member, &usecase.UpdateMeInput{Email: &taken})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_DeleteUser(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	admin := seedUser(t, store, "admin@example.com", entity.RoleAdmin, true)
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)

	require.NoError(t, svc.DeleteUser(context.Background(), admin, member.ID))

	_, err := svc.GetUser(context.Background(), admin, member.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_LastAdmin(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	admin := seedUser(t, store, "admin@example.com", entity.RoleAdmin, true)
	seedUser(t, store, "member@example.com", entity.RoleMember, true)

	// The only admin in the system cannot be removed, even by themselves.
	err := svc.DeleteUser(context.Background(), admin, admin.ID)
	assert.ErrorIs(t, err, domainerrors.ErrLastAdmin)
}

func TestUserService_DeleteUser_SecondAdminAllowed(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	admin := seedUser(t, store, "admin@example.com", entity.RoleAdmin, true)
	second := seedUser(t, store, "second@example.com", entity.RoleAdmin, true)

	assert.NoError(t, svc.DeleteUser(context.Background(), admin, second.ID))
}

func TestUserService_DeleteUser_MemberPermissions(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store, nil)
	member := seedUser(t, store, "member@example.com", entity.RoleMember, true)
	other := seedUser(t, store, "other@example.com", entity.RoleMember, true)

	err := svc.DeleteUser(context.Background(), member, other.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	assert.NoError(t, svc.DeleteUser(context.Background(), member, member.ID))
}

func TestUserService_EnsureFirstSuperuser(t *testing.T) {
	store := newFakeStore()
	cfg := &config.Config{
		FirstSuperuser: &config.FirstSuperuserConfig{
			Email:    "root@example.com",
			Password: "bootstrap-password",
			FullName: "Root",
		},
	}
	svc := newUserService(store, cfg)

	require.NoError(t, svc.EnsureFirstSuperuser(context.Background()))

	user, err := svc.GetByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)

	// Second run is a no-op.
	require.NoError(t, svc.EnsureFirstSuperuser(context.Background()))

	users, err := svc.ListUsers(context.Background(), user, 0, 10)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_EnsureFirstSuperuser_Unconfigured(t *testing.T) {
	svc := newUserService(newFakeStore(), &config.Config{})

	assert.NoError(t, svc.EnsureFirstSuperuser(context.Background()))
}
