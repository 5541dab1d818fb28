package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a rating as positive, negative or neutral.
type Category string

const (
	CategoryPositive Category = "POSITIVA"
	CategoryNegative Category = "NEGATIVA"
	CategoryNeutral  Category = "NEUTRA"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the three enumerated values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPositive, CategoryNegative, CategoryNeutral:
		return true
	default:
		return false
	}
}

// Star scores are integers in the closed interval [1, 5].
const (
	StarsMin = 1
	StarsMax = 5
)

// ValidStars reports whether the star score is within [1, 5].
func ValidStars(stars int) bool {
	return stars >= StarsMin && stars <= StarsMax
}

// Deletion records the audit trail of a soft-deleted rating: who excluded it
// and when. A nil Deletion on a Rating means the rating is active.
type Deletion struct {
	At time.Time // When the rating was excluded.
	By uuid.UUID // The administrator who excluded it.
}

// Rating is one administrator-recorded qualification of a seller, tied to the
// group where the transaction happened. Ratings are append-mostly: the only
// delete path is the soft delete, which keeps the row for audit.
//
// Buyer identity fields (BuyerPhone, BuyerName) are only ever exposed through
// the administrative read path, never publicly.
type Rating struct {
	ID           uuid.UUID
	SellerID     uuid.UUID
	GroupID      uuid.UUID
	RecordedByID uuid.UUID // The administrator who recorded the rating.
	BuyerPhone   string    // Canonical digit-only buyer phone. Admin-only.
	BuyerName    string    // Buyer display name. Admin-only.
	Category     Category
	Stars        int    // In [1, 5].
	PhotoURL     string // Mandatory evidence image reference.
	CreatedAt    time.Time
	Deletion     *Deletion // Nil while the rating is active.

	// Denormalized references, populated by listing queries.
	Seller         *Seller
	Group          *GroupRef
	RecordedByName string
}

// Deleted reports whether the rating has been soft-deleted.
func (r *Rating) Deleted() bool {
	return r.Deletion != nil
}
