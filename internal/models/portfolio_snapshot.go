package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot represents a point-in-time valuation of a user's holdings.
// This is immutable time-series data - no Base embed, no soft deletes.
type PortfolioSnapshot struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;uniqueIndex:uq_snapshots_user_time" json:"user_id"`
	RecordedAt   time.Time       `gorm:"not null;uniqueIndex:uq_snapshots_user_time" json:"recorded_at"`
	TotalCost    decimal.Decimal `gorm:"type:numeric(24,8);not null" json:"total_cost"`
	TotalValue   decimal.Decimal `gorm:"type:numeric(24,8);not null" json:"total_value"`
	ProfitLoss   decimal.Decimal `gorm:"type:numeric(24,8);not null" json:"profit_loss"`
	HoldingCount int             `gorm:"not null" json:"holding_count"`
}
