// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Lookup is exact; email uniqueness is case-sensitive as stored.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves users ordered by creation time with offset pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// CountByRole counts users holding the given role across the system.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
