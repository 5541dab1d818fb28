package model

import (
	"time"

	"github.com/google/uuid"
)

// BannerModel mirrors the 'banners' table. A partial unique index on
// (position) WHERE active, created in the migrations, backs the
// single-active-per-position invariant.
type BannerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Position  string    `gorm:"type:varchar(10);not null;index"`
	Title     string    `gorm:"type:varchar(100);not null"`
	ImageURL  string    `gorm:"type:text;not null"`
	LinkURL   string    `gorm:"type:text"`
	Active    bool      `gorm:"not null;default:false"`
	Visits    int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}
