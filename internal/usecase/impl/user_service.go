// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"hearth/config"
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

const defaultListLimit = 100

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	firstSuper   *config.FirstSuperuserConfig
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var firstSuper *config.FirstSuperuserConfig
	if params.Config != nil {
		firstSuper = params.Config.FirstSuperuser
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		firstSuper:   firstSuper,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active member account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
		IsActive:     true,
		Role:         entity.RoleMember,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected: bad credentials", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, err := srv.tokenService.GenerateToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// GetByEmail loads a user by email.
func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// GetUser returns a user by id. Admins may read anyone; members only themselves.
func (srv *userService) GetUser(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.User, error) {
	if err := policy.RequireSelfOrAdmin(actor, id.String()); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// ListUsers returns users with offset pagination. Admin only.
func (srv *userService) ListUsers(ctx context.Context, actor *entity.User, offset, limit int) ([]*entity.User, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateMe applies partial updates to the actor's own profile.
func (srv *userService) UpdateMe(ctx context.Context, actor *entity.User, input *usecase.UpdateMeInput) (*entity.User, error) {
	if actor == nil {
		return nil, domainerrors.ErrPermissionDenied
	}

	updated := *actor
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.FullName != nil {
		updated.FullName = *input.FullName
	}
	if input.Password != nil {
		if err := srv.hasher.ValidateStrength(*input.Password); err != nil {
			return nil, err
		}

		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during profile update")
		}
		updated.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", updated.ID))

	return &updated, nil
}

// DeleteUser removes a user. The last admin in the system can never be deleted,
// regardless of who asks.
func (srv *userService) DeleteUser(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if err := policy.RequireSelfOrAdmin(actor, id.String()); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		target, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for deletion")
		}

		if target.IsAdmin() {
			adminCount, err := userRepo.CountByRole(ctx, entity.RoleAdmin)
			if err != nil {
				return errors.Wrap(err, "failed to count admins")
			}
			if adminCount <= 1 {
				return domainerrors.ErrLastAdmin
			}
		}

		return userRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id), slog.Any("actorID", actor.ID))

	return nil
}

// EnsureFirstSuperuser creates the configured bootstrap admin when absent.
// Runs once at startup; a no-op when the account already exists.
func (srv *userService) EnsureFirstSuperuser(ctx context.Context) error {
	if srv.firstSuper == nil || srv.firstSuper.Email == "" {
		return nil
	}

	_, err := srv.userRepo.FindByEmail(ctx, srv.firstSuper.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up first superuser")
	}

	hashedPassword, err := srv.hasher.Hash(srv.firstSuper.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash first superuser password")
	}

	superuser := &entity.User{
		Email:        srv.firstSuper.Email,
		FullName:     srv.firstSuper.FullName,
		PasswordHash: hashedPassword,
		IsActive:     true,
		Role:         entity.RoleAdmin,
	}

	if err := srv.userRepo.Create(ctx, superuser); err != nil {
		// Lost a race with a concurrent bootstrap; the account exists.
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			return nil
		}

		return errors.Wrap(err, "failed to create first superuser")
	}

	srv.logger.Info("First superuser created", slog.String("email", superuser.Email))

	return nil
}
