// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInvitationNotFound is returned when a household invitation is not found.
var ErrInvitationNotFound = errors.New("household invitation not found")

// InvitationRepository defines the standard operations for invitation persistence.
type InvitationRepository interface {
	// FindByID retrieves an invitation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HouseholdInvitation, error)

	// FindByToken retrieves an invitation by its unique opaque token.
	FindByToken(ctx context.Context, token string) (*entity.HouseholdInvitation, error)

	// ListByHousehold retrieves all invitations issued for a household.
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*entity.HouseholdInvitation, error)

	// Create persists a new invitation.
	Create(ctx context.Context, invitation *entity.HouseholdInvitation) error

	// UpdateStatus records a state transition. The caller is responsible for
	// validating the transition against the invitation state machine.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error
}
