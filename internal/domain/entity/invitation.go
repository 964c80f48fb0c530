package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus is the lifecycle state of a household invitation.
type InvitationStatus string

const (
	// InvitationPending is the only state an invitation may transition out of.
	InvitationPending InvitationStatus = "pending"
	// InvitationAccepted is terminal; the invitee became a member.
	InvitationAccepted InvitationStatus = "accepted"
	// InvitationRevoked is terminal; an admin withdrew the invitation.
	InvitationRevoked InvitationStatus = "revoked"
	// InvitationExpired is terminal; the invitation aged out unused.
	InvitationExpired InvitationStatus = "expired"
)

// IsValid checks if the InvitationStatus is a valid value.
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationRevoked, InvitationExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s InvitationStatus) IsTerminal() bool {
	return s != InvitationPending
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// Only pending invitations may transition, and never back to pending.
func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}

	return next != InvitationPending
}

// HouseholdInvitation binds an email address to a household through a
// unique opaque token until it is accepted, revoked, or expired.
type HouseholdInvitation struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Email       string           // Invitee email; membership is created for the accepting user.
	Token       string           // Unique opaque token presented by the invitee on accept.
	Status      InvitationStatus // pending | accepted | revoked | expired
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
