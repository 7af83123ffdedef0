package models

import (
	"time"

	"birikim/internal/portfolio"
)

// TransactionType represents the side of a transaction
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// Transaction records a single buy or sell of a currency or gold type.
// Amount and Price are decimal strings in the base currency.
type Transaction struct {
	Base
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	CurrencyID uint            `gorm:"not null;index" json:"currency_id"`
	Type       TransactionType `gorm:"size:10;not null" json:"type"`
	Amount     string          `gorm:"size:64;not null" json:"amount"`
	Price      string          `gorm:"size:64;not null" json:"price"`
	Date       time.Time       `gorm:"not null" json:"date"`
	Location   string          `gorm:"size:200" json:"location,omitempty"`
	Notes      string          `gorm:"size:500" json:"notes,omitempty"`

	// Relationships
	Currency Currency `gorm:"foreignKey:CurrencyID" json:"currency"`
}

// PortfolioTransaction converts the record into the aggregation engine's input type.
func (t *Transaction) PortfolioTransaction() portfolio.Transaction {
	return portfolio.Transaction{
		ID:         t.ID,
		AssetID:    t.CurrencyID,
		Direction:  portfolio.Direction(t.Type),
		Quantity:   portfolio.Amount(t.Amount),
		UnitPrice:  portfolio.Amount(t.Price),
		OccurredAt: t.Date,
		Location:   t.Location,
	}
}
