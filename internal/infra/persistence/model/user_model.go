// Package model defines the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName     string     `gorm:"type:varchar(255);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	Role         string     `gorm:"type:varchar(20);not null;default:'member'"`
	HouseholdID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
