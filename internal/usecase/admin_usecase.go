package usecase

import (
	"context"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAdminInput carries a new administrator account. The created account
// always has the ADMIN role; SUPER_ADMIN is provisioned only via Bootstrap.
type CreateAdminInput struct {
	Name     string   `json:"nome" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"senha" validate:"required,min=8"`
	GroupIDs []string `json:"grupoIds" validate:"dive,uuid"`
}

// UpdateAdminInput carries a partial admin update. Nil fields are untouched.
// A non-nil GroupIDs fully replaces the membership set.
type UpdateAdminInput struct {
	Name     *string   `json:"nome"`
	Email    *string   `json:"email"`
	Password *string   `json:"senha"`
	Active   *bool     `json:"ativo"`
	GroupIDs *[]string `json:"grupoIds"`
}

// AdminUsecase defines the administrator registry use cases.
type AdminUsecase interface {
	// List returns every administrator, newest first, with group links.
	// SUPER_ADMIN only. Password hashes are never part of the output mapping.
	List(ctx context.Context, principal *entity.Principal) ([]*entity.Admin, error)

	// Create registers a new ADMIN account with an optionally pre-linked
	// membership set. Fails with Conflict on a duplicate email.
	Create(ctx context.Context, principal *entity.Principal, input *CreateAdminInput) (*entity.Admin, error)

	// Update edits an existing account. A SUPER_ADMIN target cannot be
	// deactivated or have its memberships edited through this path.
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateAdminInput) error

	// Deactivate clears the active flag. Accounts are never hard-deleted.
	Deactivate(ctx context.Context, principal *entity.Principal, id uuid.UUID) error

	// Bootstrap provisions the initial SUPER_ADMIN out-of-band. Idempotent:
	// when an account with the email already exists, nothing happens.
	Bootstrap(ctx context.Context, name, email, password string) error
}
