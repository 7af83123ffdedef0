package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"birikim/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCurrency creates a foreign currency quoted at the given bid/ask.
func CreateTestCurrency(t *testing.T, db *gorm.DB, buying, selling string) *models.Currency {
	t.Helper()
	return createCurrency(t, db, models.CurrencyKindCurrency, buying, selling)
}

// CreateTestGold creates a gold type quoted at the given bid/ask.
func CreateTestGold(t *testing.T, db *gorm.DB, buying, selling string) *models.Currency {
	t.Helper()
	return createCurrency(t, db, models.CurrencyKindGold, buying, selling)
}

func createCurrency(t *testing.T, db *gorm.DB, kind models.CurrencyKind, buying, selling string) *models.Currency {
	t.Helper()

	n := nextID()
	now := time.Now()
	currency := &models.Currency{
		Code:     fmt.Sprintf("TST%d", n),
		Name:     fmt.Sprintf("Test %s %d", kind, n),
		Kind:     kind,
		Buying:   buying,
		Selling:  selling,
		QuotedAt: &now,
	}
	if err := db.Create(currency).Error; err != nil {
		t.Fatalf("failed to create test currency: %v", err)
	}
	return currency
}

// CreateTestTransaction records a buy or sell of amount units at price.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, currencyID uint, txType models.TransactionType, amount, price string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, currencyID, txType, amount, price, time.Now())
}

// CreateTestTransactionAt is CreateTestTransaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID, currencyID uint, txType models.TransactionType, amount, price string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CurrencyID: currencyID,
		Type:       txType,
		Amount:     amount,
		Price:      price,
		Date:       date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
