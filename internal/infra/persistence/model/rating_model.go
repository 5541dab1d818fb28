package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. Rows are never hard-deleted;
// DeletedAt and DeletedByID together form the removal audit pair.
type RatingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	SellerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	GroupID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RecordedByID uuid.UUID `gorm:"type:uuid;not null"`
	BuyerPhone   string    `gorm:"type:varchar(11);not null"`
	BuyerName    string    `gorm:"type:varchar(100)"`
	Category     string    `gorm:"type:varchar(10);not null;check:chk_ratings_category,category IN ('POSITIVA','NEGATIVA','NEUTRA')"`
	Stars        int       `gorm:"not null;check:chk_ratings_stars,stars BETWEEN 1 AND 5"`
	PhotoURL     string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
	DeletedByID  *uuid.UUID `gorm:"type:uuid"`

	Seller     *SellerModel `gorm:"foreignKey:SellerID"`
	Group      *GroupModel  `gorm:"foreignKey:GroupID"`
	RecordedBy *AdminModel  `gorm:"foreignKey:RecordedByID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
