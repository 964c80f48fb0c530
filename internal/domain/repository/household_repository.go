// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for household persistence.
var (
	// ErrHouseholdNotFound is returned when a household is not found.
	ErrHouseholdNotFound = errors.New("household not found")
	// ErrMemberNotFound is returned when a household membership is not found.
	ErrMemberNotFound = errors.New("household member not found")
	// ErrDuplicateHouseholdName is returned when the household name is already taken.
	ErrDuplicateHouseholdName = errors.New("household name already exists")
	// ErrDuplicateMember is returned when the (household, user) pair already exists.
	ErrDuplicateMember = errors.New("household member already exists")
)

// HouseholdRepository defines the standard operations for household persistence.
type HouseholdRepository interface {
	// FindByID retrieves a household by its unique ID, preloading members.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// FindByName retrieves a household by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Household, error)

	// Create persists a new household.
	Create(ctx context.Context, household *entity.Household) error

	// AddMember persists a new membership record.
	AddMember(ctx context.Context, member *entity.HouseholdMember) error

	// FindMember retrieves the membership of a user within a household.
	FindMember(ctx context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error)

	// CountMembers counts the memberships of a household.
	CountMembers(ctx context.Context, householdID uuid.UUID) (int64, error)
}
