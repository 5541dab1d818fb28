package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to every administrative
// request. It is built from the session token, never from request input.
type Principal struct {
	ID       uuid.UUID   // Administrator id.
	Name     string      // Display name, carried for audit trails.
	Role     Role        // ADMIN or SUPER_ADMIN.
	GroupIDs []uuid.UUID // Groups this administrator belongs to. Empty for SUPER_ADMIN: they are not scoped.
}

// IsSuperAdmin reports whether the principal holds the unrestricted role.
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// MemberOf reports whether the principal belongs to the given group.
func (p *Principal) MemberOf(groupID uuid.UUID) bool {
	if p == nil {
		return false
	}

	return slices.Contains(p.GroupIDs, groupID)
}
