// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of an administrator account.
type Role string

const (
	// RoleAdmin indicates a regular administrator, scoped to group memberships.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin indicates the unrestricted administrator role.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
