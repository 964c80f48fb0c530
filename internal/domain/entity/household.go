// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Household is the tenant boundary grouping users and their shared
// financial and calendar data. Every scoped entity carries its id.
type Household struct {
	ID        uuid.UUID          // The unique ID for this household.
	Name      string             // Unique display name across the system.
	CreatedBy uuid.UUID          // The user that created the household.
	Members   []*HouseholdMember // Memberships of this household, creator first.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HouseholdMember joins a user to a household with a role scoped to that
// household. Each (household, user) pair appears at most once.
type HouseholdMember struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        Role // Role within this household, independent of the system role.
	CreatedAt   time.Time
}
