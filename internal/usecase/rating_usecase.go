package usecase

import (
	"context"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingsPageSize is the fixed page size of the administrative listing.
const RatingsPageSize = 20

// RecordRatingInput carries a new qualification to be registered.
// SellerName is only consulted when the seller phone is not yet known.
type RecordRatingInput struct {
	SellerPhone string `json:"telefoneVendedor" validate:"required"`
	SellerName  string `json:"nomeVendedor"`
	GroupID     string `json:"grupoId" validate:"required,uuid"`
	BuyerPhone  string `json:"telefoneComprador" validate:"required"`
	BuyerName   string `json:"nomeComprador" validate:"required"`
	Category    string `json:"tipo" validate:"required"`
	Stars       int    `json:"estrelas" validate:"required"`
	PhotoURL    string `json:"fotoUrl" validate:"required"`
}

// ListRatingsInput narrows the administrative listing. All filters optional.
type ListRatingsInput struct {
	GroupID     *uuid.UUID      // Narrows to one group, still clamped to membership scope.
	SellerPhone string          // Digit substring match on the seller phone.
	Category    entity.Category // Empty means all categories.
	Page        int             // 1-based. Values below 1 are treated as 1.
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	Page       int   `json:"pagina"`
	PerPage    int   `json:"porPagina"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPaginas"`
}

// RatingPage is one page of the administrative listing, buyer identity included.
type RatingPage struct {
	Ratings    []*entity.Rating
	Pagination Pagination
}

// RatingUsecase defines the rating ledger use cases.
type RatingUsecase interface {
	// Record validates and persists a new rating, creating the seller on
	// first reference. Requires group scope over the target group.
	Record(ctx context.Context, principal *entity.Principal, input *RecordRatingInput) (*entity.Rating, error)

	// SoftDelete marks a rating as excluded, recording the audit trail.
	// Fails with Conflict when the rating was already excluded.
	SoftDelete(ctx context.Context, principal *entity.Principal, ratingID uuid.UUID) error

	// List returns a page of non-deleted ratings visible to the principal,
	// newest first. Non-super principals are clamped to their memberships.
	List(ctx context.Context, principal *entity.Principal, input *ListRatingsInput) (*RatingPage, error)
}
