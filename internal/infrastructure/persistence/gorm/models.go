// Package gorm provides GORM model definitions and repository
// implementations for pantry persistence.
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// LotModel represents the GORM model for pantry lots
type LotModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Version int64     `gorm:"default:1"`

	CanonicalName string  `gorm:"type:varchar(255);not null;index"`
	Quantity      float64 `gorm:"not null"`
	Unit          string  `gorm:"type:varchar(50);not null"`
	Status        string  `gorm:"type:varchar(20);not null;index"`

	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for lots
func (LotModel) TableName() string {
	return "pantry_lots"
}
