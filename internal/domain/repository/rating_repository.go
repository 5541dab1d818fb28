package repository

import (
	"context"
	"errors"

	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRatingNotFound is a domain-specific error returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingFilter narrows an administrative listing. Zero values mean "no filter".
type RatingFilter struct {
	// GroupIDs restricts to these groups. For non-super principals this is
	// always populated with the membership set, so scope cannot be escaped.
	GroupIDs []uuid.UUID

	// SellerPhoneContains matches sellers whose canonical phone contains the
	// given digit substring.
	SellerPhoneContains string

	// Category restricts to one rating category.
	Category entity.Category
}

// RatingRepository defines the standard operations for rating persistence.
// There is no hard delete: SoftDelete is the only removal path.
type RatingRepository interface {
	// FindByID retrieves a rating by id, deleted or not, with its audit fields.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// FindActiveBySeller retrieves the non-deleted ratings of a seller,
	// newest first, with group references populated.
	FindActiveBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Rating, error)

	// List retrieves a page of non-deleted ratings matching the filter,
	// newest first, with seller, group and recorder references populated.
	// The total count for the same filter is returned alongside the page.
	List(ctx context.Context, filter RatingFilter, offset, limit int) ([]*entity.Rating, int64, error)

	// Create persists a new rating with the soft-delete flag unset.
	Create(ctx context.Context, rating *entity.Rating) error

	// SoftDelete marks a rating as excluded, recording who excluded it and when.
	SoftDelete(ctx context.Context, id uuid.UUID, deletion entity.Deletion) error

	// CountByGroup counts all ratings recorded under a group, soft-deleted
	// included. Used to refuse group deletion.
	CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
}
