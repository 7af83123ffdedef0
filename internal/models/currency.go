package models

import (
	"time"

	"birikim/internal/portfolio"
)

// CurrencyKind distinguishes gold types from foreign currencies.
type CurrencyKind string

const (
	CurrencyKindCurrency CurrencyKind = "currency"
	CurrencyKindGold     CurrencyKind = "gold"
)

// Currency is a tradable asset (a foreign currency or a gold type) together
// with its latest market quote in the base currency. Quotes are stored exactly
// as the market-data feed reported them.
type Currency struct {
	Base
	Code     string       `gorm:"uniqueIndex;size:20;not null" json:"code"`
	Name     string       `gorm:"not null" json:"name"`
	Kind     CurrencyKind `gorm:"size:20;not null;default:'currency'" json:"kind"`
	Buying   string       `gorm:"size:64;not null;default:'0'" json:"buying"`
	Selling  string       `gorm:"size:64;not null;default:'0'" json:"selling"`
	QuotedAt *time.Time   `json:"quoted_at,omitempty"`
}

// Asset converts the currency into the aggregation engine's reference type.
func (c *Currency) Asset() portfolio.Asset {
	return portfolio.Asset{
		ID:      c.ID,
		Code:    c.Code,
		Name:    c.Name,
		Buying:  portfolio.Amount(c.Buying),
		Selling: portfolio.Amount(c.Selling),
	}
}
