package repository

import (
	"context"
	"errors"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGroupNotFound is a domain-specific error returned when a group is not found.
var ErrGroupNotFound = errors.New("group not found")

// ErrGroupReferenced is returned when a group cannot be deleted because
// ratings still reference it.
var ErrGroupReferenced = errors.New("group still referenced by ratings")

// GroupRepository defines the standard operations for group persistence.
type GroupRepository interface {
	// FindByID retrieves a single group by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindAll retrieves every group, ordered by name ascending.
	FindAll(ctx context.Context) ([]*entity.Group, error)

	// FindByIDs retrieves the groups matching the given ids, ordered by name ascending.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error)

	// Create persists a new group.
	Create(ctx context.Context, group *entity.Group) error

	// Update modifies an existing group.
	Update(ctx context.Context, group *entity.Group) error

	// Delete hard-deletes a group. Callers must first check for referencing
	// ratings; the FK constraint is the backstop.
	Delete(ctx context.Context, id uuid.UUID) error
}
