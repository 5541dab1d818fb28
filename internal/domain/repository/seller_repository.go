// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"qualifica/internal/domain/entity"
)

// ErrSellerNotFound is a domain-specific error returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// ErrDuplicateSeller is returned when a create collides with the unique
// constraint on the canonical phone. Callers racing on first registration
// recover by re-reading.
var ErrDuplicateSeller = errors.New("seller already exists for this phone")

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// FindByPhone retrieves a seller by their canonical phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Seller, error)

	// Create persists a new seller. The storage layer enforces phone
	// uniqueness; a collision surfaces as ErrDuplicateSeller.
	Create(ctx context.Context, seller *entity.Seller) error

	// UpdatePhoto sets the profile photo reference of an existing seller.
	UpdatePhoto(ctx context.Context, phone, photoURL string) (*entity.Seller, error)
}
