package entity

import (
	"time"

	"github.com/google/uuid"
)

// BannerPosition is one of the two fixed display slots for promotional banners.
type BannerPosition string

const (
	BannerLeft  BannerPosition = "ESQUERDA"
	BannerRight BannerPosition = "DIREITA"
)

// String returns the string representation of the BannerPosition.
func (p BannerPosition) String() string {
	return string(p)
}

// IsValid checks if the BannerPosition is a valid slot.
func (p BannerPosition) IsValid() bool {
	switch p {
	case BannerLeft, BannerRight:
		return true
	default:
		return false
	}
}

// Banner is a promotional banner occupying one of the two fixed positions.
// At most one banner per position may be active at a time; activating a new
// one deactivates the previous occupant of the slot.
type Banner struct {
	ID        uuid.UUID
	Position  BannerPosition
	Title     string
	ImageURL  string
	LinkURL   string // Target link followed by public viewers.
	Active    bool
	Visits    int64 // Access counter, incremented by the public visit signal.
	CreatedAt time.Time
	UpdatedAt time.Time
}
