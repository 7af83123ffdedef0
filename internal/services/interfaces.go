package services

import (
	"time"

	"github.com/shopspring/decimal"

	"birikim/internal/models"
	"birikim/internal/pagination"
	"birikim/internal/portfolio"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	RecordLogin(userID uint) error
}

// QuoteInput is one market quote as delivered by the pipeline feed.
type QuoteInput struct {
	Code     string
	Name     string
	Kind     models.CurrencyKind
	Buying   string
	Selling  string
	QuotedAt time.Time
}

// CurrencyServicer defines the contract for currency reference data and quotes.
type CurrencyServicer interface {
	ListCurrencies(kind *models.CurrencyKind) ([]models.Currency, error)
	GetCurrencyByID(id uint) (*models.Currency, error)
	GetCurrencyByCode(code string) (*models.Currency, error)
	UpsertQuotes(quotes []QuoteInput) (int, error)
	Registry() (*portfolio.Registry, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CurrencyID *uint
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, currencyID uint, transactionType models.TransactionType, amount, price string, date time.Time, location, notes string) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	ListAllUserTransactions(userID uint) ([]models.Transaction, error)
}

// HoldingView is a holding enriched with the currency's display data.
type HoldingView struct {
	portfolio.Holding
	Code string              `json:"code"`
	Name string              `json:"name"`
	Kind models.CurrencyKind `json:"kind"`
}

// PortfolioView is a user's valued portfolio, rounded for display.
type PortfolioView struct {
	BaseCurrency string                `json:"base_currency"`
	ValuedAt     time.Time             `json:"valued_at"`
	Holdings     []HoldingView         `json:"holdings"`
	Totals       portfolio.Totals      `json:"totals"`
	Diagnostics  portfolio.Diagnostics `json:"diagnostics"`
}

// ConversionQuote is the result of converting an amount between two assets.
type ConversionQuote struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Result decimal.Decimal `json:"result"`
}

// PortfolioServicer defines the contract for portfolio valuation.
type PortfolioServicer interface {
	GetPortfolio(userID uint) (*PortfolioView, error)
	Convert(from, to, amount string) (*ConversionQuote, error)
}

// PortfolioSnapshotServicer defines the contract for portfolio snapshot operations.
type PortfolioSnapshotServicer interface {
	ComputeAndRecordSnapshots(recordedAt time.Time) (int, error)
	GetSnapshots(userID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
