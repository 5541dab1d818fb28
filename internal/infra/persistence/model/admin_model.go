package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table. Emails are stored lower-cased and
// unique. Accounts are deactivated, never deleted, so rating audit references
// stay resolvable.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Groups []GroupModel `gorm:"many2many:admin_groups"`
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// AdminGroupModel mirrors the 'admin_groups' join table linking admins to the
// groups they moderate.
type AdminGroupModel struct {
	AdminModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (AdminGroupModel) TableName() string {
	return "admin_groups"
}
