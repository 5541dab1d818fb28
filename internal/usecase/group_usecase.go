package usecase

import (
	"context"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput carries a new group's attributes.
type CreateGroupInput struct {
	Name        string `json:"nome" validate:"required"`
	Description string `json:"descricao"`
	OwnerName   string `json:"nomeDono" validate:"required"`
	OwnerPhone  string `json:"telefoneDono" validate:"required"`
}

// UpdateGroupInput carries a partial group update. Nil fields are untouched.
type UpdateGroupInput struct {
	Name        *string `json:"nome"`
	Description *string `json:"descricao"`
	OwnerName   *string `json:"nomeDono"`
	OwnerPhone  *string `json:"telefoneDono"`
}

// GroupUsecase defines the group registry use cases.
type GroupUsecase interface {
	// ListForPrincipal returns every group for SUPER_ADMIN, or the
	// principal's memberships otherwise. Ordered by name.
	ListForPrincipal(ctx context.Context, principal *entity.Principal) ([]*entity.Group, error)

	// Create registers a new group. SUPER_ADMIN only.
	Create(ctx context.Context, principal *entity.Principal, input *CreateGroupInput) (*entity.Group, error)

	// Update edits an existing group. SUPER_ADMIN only.
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateGroupInput) (*entity.Group, error)

	// Delete removes a group. SUPER_ADMIN only; refused with Conflict
	// (carrying the blocking count) while any rating references the group,
	// soft-deleted ones included.
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}
