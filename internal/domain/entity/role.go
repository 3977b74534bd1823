// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the capability an identity holds in the system.
type Role string

const (
	// RoleUser indicates a regular signed-in traveller.
	RoleUser Role = "user"
	// RoleGuardian indicates a community moderator.
	RoleGuardian Role = "guardian"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGuardian, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny reports whether any of the given roles is held.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Identity is an authenticated caller as asserted by the external auth provider.
type Identity struct {
	UserID string
	Roles  Roles
}

// IsModerator reports whether the identity may approve or reject submissions.
func (i *Identity) IsModerator() bool {
	return i != nil && i.Roles.ContainsAny(RoleGuardian, RoleAdmin)
}
