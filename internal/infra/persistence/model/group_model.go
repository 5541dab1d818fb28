package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table, one row per WhatsApp marketplace group.
type GroupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	OwnerName   string    `gorm:"type:varchar(100)"`
	OwnerPhone  string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}
