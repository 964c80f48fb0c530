// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Email doubles as the login
// identifier and is unique as stored (case-sensitive).
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email        string     // The user's primary contact email, used as the login identifier.
	FullName     string     // The user's display name.
	PasswordHash string     // The bcrypt-hashed password. Never the plaintext.
	IsActive     bool       // Inactive users authenticate but are rejected by the active guard.
	Role         Role       // System role: admin or member.
	HouseholdID  *uuid.UUID // The household this user currently belongs to; nil when none.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// InHousehold reports whether the user currently belongs to a household.
func (u *User) InHousehold() bool {
	return u.HouseholdID != nil
}
