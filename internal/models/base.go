package models

import (
	"time"

	"gorm.io/gorm"
)

// Base contains common columns for all mutable tables
type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// All lists every model managed by the schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Currency{},
		&Transaction{},
		&PortfolioSnapshot{},
		&AuditLog{},
	}
}
