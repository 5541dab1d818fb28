package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group is a WhatsApp selling group under which ratings are recorded.
// Administrators are linked to groups through a many-to-many membership.
type Group struct {
	ID          uuid.UUID // Opaque unique identifier.
	Name        string    // Group display name.
	Description string    // Optional free-form description.
	OwnerName   string    // Display name of the group owner.
	OwnerPhone  string    // Canonical digit-only phone of the group owner.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GroupRef is the lightweight projection of a group used when ratings and
// summaries reference the group they were recorded under.
type GroupRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}
