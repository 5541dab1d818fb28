package usecase

import (
	"context"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBannerInput carries a new banner. The new banner is created active;
// any previously active banner in the same position is deactivated atomically.
type CreateBannerInput struct {
	Position string `json:"posicao" validate:"required"`
	Title    string `json:"titulo" validate:"required"`
	ImageURL string `json:"imagemUrl" validate:"required"`
	LinkURL  string `json:"linkUrl" validate:"required"`
}

// UpdateBannerInput carries a partial banner update. The position of an
// existing banner cannot change.
type UpdateBannerInput struct {
	Title    *string `json:"titulo"`
	ImageURL *string `json:"imagemUrl"`
	LinkURL  *string `json:"linkUrl"`
	Active   *bool   `json:"ativo"`
}

// BannerUsecase defines the banner registry use cases.
type BannerUsecase interface {
	// ListActive returns the active banners, at most one per position.
	// Public; no authentication.
	ListActive(ctx context.Context) ([]*entity.Banner, error)

	// ListAll returns every banner for management. SUPER_ADMIN only.
	ListAll(ctx context.Context, principal *entity.Principal) ([]*entity.Banner, error)

	// Create registers a new active banner, atomically deactivating the
	// previous occupant of the position. SUPER_ADMIN only.
	Create(ctx context.Context, principal *entity.Principal, input *CreateBannerInput) (*entity.Banner, error)

	// Update partially edits a banner. SUPER_ADMIN only.
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateBannerInput) (*entity.Banner, error)

	// Delete hard-deletes a banner. SUPER_ADMIN only.
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error

	// RegisterVisit increments the access counter. Unauthenticated and
	// best-effort: the caller treats failures as non-fatal.
	RegisterVisit(ctx context.Context, id uuid.UUID) error
}
