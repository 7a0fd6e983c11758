package entity

import "strings"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw role string into a Role. Matching is case-insensitive
// and an empty value defaults to RoleUser. The returned bool is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return RoleUser, true
	}

	role := Role(strings.ToUpper(trimmed))

	return role, role.IsValid()
}
