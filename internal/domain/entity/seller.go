package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is a marketplace seller identified by their canonical phone number.
// Sellers are created implicitly by the first rating that references an
// unknown phone; the phone is immutable once created.
type Seller struct {
	ID        uuid.UUID // Opaque unique identifier.
	Phone     string    // Canonical digit-only phone, the natural key. Unique.
	Name      string    // Display name, supplied when the seller is first registered.
	PhotoURL  string    // Optional profile photo reference. Empty when unset.
	CreatedAt time.Time // Timestamp of when this seller was first registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}
