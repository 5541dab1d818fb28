package repository

import (
	"context"
	"errors"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBannerNotFound is a domain-specific error returned when a banner is not found.
var ErrBannerNotFound = errors.New("banner not found")

// BannerRepository defines the standard operations for banner persistence.
type BannerRepository interface {
	// FindByID retrieves a banner by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)

	// FindActive retrieves the active banners, position ascending.
	// With the single-active invariant this yields at most one per position.
	FindActive(ctx context.Context) ([]*entity.Banner, error)

	// FindAll retrieves every banner for the management listing:
	// active first, then by position, then newest first.
	FindAll(ctx context.Context) ([]*entity.Banner, error)

	// Create persists a new banner.
	Create(ctx context.Context, banner *entity.Banner) error

	// Update modifies an existing banner.
	Update(ctx context.Context, banner *entity.Banner) error

	// Delete hard-deletes a banner.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeactivateByPosition clears the active flag of any active banner in the
	// given position. Paired with Create inside one transaction to keep the
	// single-active-per-position invariant.
	DeactivateByPosition(ctx context.Context, position entity.BannerPosition) error

	// IncrementVisits bumps the access counter by one.
	IncrementVisits(ctx context.Context, id uuid.UUID) error
}
