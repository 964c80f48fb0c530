// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateMeInput defines the mutable fields of the caller's own profile.
// Nil fields are left untouched.
type UpdateMeInput struct {
	Email    *string
	FullName *string
	Password *string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Operations acting on behalf of a caller take the authenticated actor explicitly.
type UserUsecase interface {
	// Register creates a new active member account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetByEmail loads a user by email. Used to resolve token subjects.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetUser returns a user by id. Admins may read anyone; members only themselves.
	GetUser(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.User, error)

	// ListUsers returns users with offset pagination. Admin only.
	ListUsers(ctx context.Context, actor *entity.User, offset, limit int) ([]*entity.User, error)

	// UpdateMe applies partial updates to the actor's own profile.
	UpdateMe(ctx context.Context, actor *entity.User, input *UpdateMeInput) (*entity.User, error)

	// DeleteUser removes a user. Admins may delete anyone but the last admin;
	// members may delete only themselves.
	DeleteUser(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// EnsureFirstSuperuser creates the configured bootstrap admin when absent.
	EnsureFirstSuperuser(ctx context.Context) error
}
