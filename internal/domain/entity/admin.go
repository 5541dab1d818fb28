package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an administrator account. Admins authenticate with email and
// password, carry a role, and belong to zero or more groups. Accounts are
// deactivated, never hard-deleted.
type Admin struct {
	ID           uuid.UUID  // Opaque unique identifier.
	Name         string     // Display name.
	Email        string     // Unique login email, stored lower-cased.
	PasswordHash string     // bcrypt hash. Never serialized outward.
	Role         Role       // ADMIN or SUPER_ADMIN.
	Active       bool       // Deactivated admins cannot log in.
	Groups       []GroupRef // Group memberships, populated on listing.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GroupIDs returns the ids of the groups this admin belongs to.
func (a *Admin) GroupIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Groups))
	for _, g := range a.Groups {
		ids = append(ids, g.ID)
	}

	return ids
}
