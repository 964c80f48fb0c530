// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// It is a closed enumeration; ad-hoc string comparison is not allowed.
type Role string

const (
	// RoleAdmin indicates an administrator with elevated permissions.
	RoleAdmin Role = "admin"
	// RoleMember indicates a regular household member.
	RoleMember Role = "member"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw string into a Role, reporting validity.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
