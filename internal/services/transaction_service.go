package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "birikim/internal/errors"
	"birikim/internal/models"
	"birikim/internal/pagination"
	"birikim/internal/portfolio"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	currencyService CurrencyServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, currencyService CurrencyServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		currencyService: currencyService,
	}
}

// CreateTransaction records a buy or sell for a user. Amount and price must
// parse as positive decimals; they are stored exactly as given.
// Over-selling is accepted and surfaces later as an anomalous position.
func (s *transactionService) CreateTransaction(
	userID uint,
	currencyID uint,
	transactionType models.TransactionType,
	amount, price string,
	date time.Time,
	location, notes string,
) (*models.Transaction, error) {
	if transactionType != models.TransactionTypeBuy && transactionType != models.TransactionTypeSell {
		return nil, apperrors.ErrInvalidTransactionType
	}

	amount = strings.TrimSpace(amount)
	price = strings.TrimSpace(price)
	for _, raw := range []string{amount, price} {
		d, ok := portfolio.ParseAmount(raw)
		if !ok || !d.IsPositive() {
			return nil, apperrors.ErrInvalidAmount
		}
	}

	if _, err := s.currencyService.GetCurrencyByID(currencyID); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:     userID,
		CurrencyID: currencyID,
		Type:       transactionType,
		Amount:     amount,
		Price:      price,
		Date:       date,
		Location:   strings.TrimSpace(location),
		Notes:      notes,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTransactionByID(userID, transaction.ID)
}

// GetUserTransactions returns a page of the user's transactions, newest first.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}).Where("user_id = ?", userID), filter)

	var totalItems int64
	if err := base.Session(&gorm.Session{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Preload("Currency").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CurrencyID != nil {
		q = q.Where("currency_id = ?", *f.CurrencyID)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Currency").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction soft-deletes one of the user's transactions.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// ListAllUserTransactions returns the user's full history in chronological order.
func (s *transactionService) ListAllUserTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date ASC").Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
