// Package policy centralizes authorization rules so use cases and handlers
// share a single decision point.
package policy

import (
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
)

// RequireAdmin allows only users holding the admin role.
func RequireAdmin(actor *entity.User) error {
	if actor == nil || !actor.IsAdmin() {
		return domainerrors.ErrPermissionDenied
	}
	return nil
}

// RequireSelfOrAdmin allows admins to act on anyone and members to act on
// themselves only.
func RequireSelfOrAdmin(actor *entity.User, targetID string) error {
	if actor == nil {
		return domainerrors.ErrPermissionDenied
	}
	if actor.IsAdmin() || actor.ID.String() == targetID {
		return nil
	}
	return domainerrors.ErrPermissionDenied
}

// RequireHouseholdAdmin allows only admin members of the given household.
func RequireHouseholdAdmin(member *entity.HouseholdMember) error {
	if member == nil || member.Role != entity.RoleAdmin {
		return domainerrors.ErrPermissionDenied
	}
	return nil
}
