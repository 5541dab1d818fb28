package repository

import (
	"context"
	"errors"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an administrator is not found.
var ErrAdminNotFound = errors.New("admin not found")

// ErrDuplicateAdminEmail is returned when a create or update collides with the
// unique constraint on the lower-cased email.
var ErrDuplicateAdminEmail = errors.New("admin email already registered")

// AdminRepository defines the standard operations for administrator persistence.
type AdminRepository interface {
	// FindByID retrieves a single admin by their unique ID, with group links.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves a single admin by their lower-cased email, with group links.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// FindAll retrieves every admin, newest first, with group links.
	FindAll(ctx context.Context) ([]*entity.Admin, error)

	// Create persists a new admin together with any initial group links.
	Create(ctx context.Context, admin *entity.Admin) error

	// Update modifies an existing admin's own fields (not memberships).
	Update(ctx context.Context, admin *entity.Admin) error

	// ReplaceGroups swaps the admin's memberships for the given set: all
	// existing links are removed, then the requested ones inserted.
	ReplaceGroups(ctx context.Context, adminID uuid.UUID, groupIDs []uuid.UUID) error
}
