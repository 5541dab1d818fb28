// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel mirrors the 'sellers' table. The normalized phone is the natural
// key; the unique index makes concurrent creations collide instead of
// producing duplicates.
type SellerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Phone     string    `gorm:"type:varchar(11);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	PhotoURL  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Ratings []RatingModel `gorm:"foreignKey:SellerID"`
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
