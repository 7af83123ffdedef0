package services

import (
	"testing"
	"time"

	"birikim/internal/models"
	"birikim/internal/pagination"
	"birikim/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("valid_buy_keeps_raw_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		curSvc, _ := newTestCurrencyService(db)
		txSvc := NewTransactionService(db, curSvc)
		user := testutil.CreateTestUser(t, db)
		gold := testutil.CreateTestGold(t, db, "2400", "2450")

		date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		tx, err := txSvc.CreateTransaction(user.ID, gold.ID, models.TransactionTypeBuy, " 1.234,5 ", "2000", date, " Kapalıçarşı ", "wedding gift")
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Amount != "1.234,5" {
			t.Errorf("expected trimmed raw amount, got %q", tx.Amount)
		}
		if tx.Location != "Kapalıçarşı" {
			t.Errorf("expected trimmed location, got %q", tx.Location)
		}
		if tx.Currency.ID != gold.ID {
			t.Errorf("expected currency preloaded, got %+v", tx.Currency)
		}
		if !tx.Date.Equal(date) {
			t.Errorf("expected date %s, got %s", date, tx.Date)
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		curSvc, _ := newTestCurrencyService(db)
		txSvc := NewTransactionService(db, curSvc)
		user := testutil.CreateTestUser(t, db)
		usd := testutil.CreateTestCurrency(t, db, "32", "33")

		before := time.Now().Add(-time.Second)
		tx, err := txSvc.CreateTransaction(user.ID, usd.ID, models.TransactionTypeSell, "100", "30", time.Time{}, "", "")
		testutil.AssertNoError(t, err)
		if tx.Date.Before(before) {
			t.Errorf("expected date defaulted to now, got %s", tx.Date)
		}
	})

	for _, tc := range []struct {
		name          string
		txType        models.TransactionType
		amount, price string
		currency      uint
		wantCode      string
	}{
		{"unknown_type", "transfer", "1", "1", 0, "INVALID_TRANSACTION_TYPE"},
		{"zero_amount", models.TransactionTypeBuy, "0", "10", 0, "INVALID_AMOUNT"},
		{"negative_price", models.TransactionTypeBuy, "1", "-10", 0, "INVALID_AMOUNT"},
		{"garbage_amount", models.TransactionTypeBuy, "ten", "10", 0, "INVALID_AMOUNT"},
		{"unknown_currency", models.TransactionTypeBuy, "1", "10", 99999, "CURRENCY_NOT_FOUND"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			curSvc, _ := newTestCurrencyService(db)
			txSvc := NewTransactionService(db, curSvc)
			user := testutil.CreateTestUser(t, db)
			currencyID := tc.currency
			if currencyID == 0 {
				currencyID = testutil.CreateTestCurrency(t, db, "32", "33").ID
			}

			_, err := txSvc.CreateTransaction(user.ID, currencyID, tc.txType, tc.amount, tc.price, time.Now(), "", "")
			testutil.AssertAppError(t, err, tc.wantCode)
		})
	}

	t.Run("oversell_is_accepted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		curSvc, _ := newTestCurrencyService(db)
		txSvc := NewTransactionService(db, curSvc)
		user := testutil.CreateTestUser(t, db)
		usd := testutil.CreateTestCurrency(t, db, "32", "33")

		_, err := txSvc.CreateTransaction(user.ID, usd.ID, models.TransactionTypeSell, "500", "30", time.Now(), "", "")
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	curSvc, _ := newTestCurrencyService(db)
	txSvc := NewTransactionService(db, curSvc)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	usd := testutil.CreateTestCurrency(t, db, "32", "33")
	gold := testutil.CreateTestGold(t, db, "2400", "2450")

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestTransactionAt(t, db, user.ID, usd.ID, models.TransactionTypeBuy, "100", "30", jan)
	testutil.CreateTestTransactionAt(t, db, user.ID, gold.ID, models.TransactionTypeBuy, "5", "2000", feb)
	testutil.CreateTestTransactionAt(t, db, user.ID, usd.ID, models.TransactionTypeSell, "40", "31", mar)
	testutil.CreateTestTransactionAt(t, db, other.ID, usd.ID, models.TransactionTypeBuy, "1", "1", feb)

	t.Run("all_newest_first", func(t *testing.T) {
		page, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 {
			t.Fatalf("expected 3 items, got %d", page.TotalItems)
		}
		if !page.Data[0].Date.Equal(mar) {
			t.Errorf("expected newest first, got %s", page.Data[0].Date)
		}
		if page.Data[0].Currency.Code != usd.Code {
			t.Errorf("expected preloaded currency code %s, got %q", usd.Code, page.Data[0].Currency.Code)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 2}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.TotalPages != 2 {
			t.Errorf("expected 1 item on page 2 of 2, got %d items, %d pages", len(page.Data), page.TotalPages)
		}
	})

	t.Run("filters", func(t *testing.T) {
		sell := models.TransactionTypeSell
		from := jan.Add(24 * time.Hour)
		currencyID := usd.ID

		byType, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Type: &sell})
		testutil.AssertNoError(t, err)
		if byType.TotalItems != 1 {
			t.Errorf("expected 1 sell, got %d", byType.TotalItems)
		}

		byDateAndCurrency, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{FromDate: &from, CurrencyID: &currencyID})
		testutil.AssertNoError(t, err)
		if byDateAndCurrency.TotalItems != 1 {
			t.Errorf("expected 1 USD transaction after Jan 16, got %d", byDateAndCurrency.TotalItems)
		}
	})
}

func TestGetTransactionByID_OtherUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	curSvc, _ := newTestCurrencyService(db)
	txSvc := NewTransactionService(db, curSvc)
	owner := testutil.CreateTestUser(t, db)
	intruder := testutil.CreateTestUser(t, db)
	usd := testutil.CreateTestCurrency(t, db, "32", "33")
	tx := testutil.CreateTestTransaction(t, db, owner.ID, usd.ID, models.TransactionTypeBuy, "1", "30")

	_, err := txSvc.GetTransactionByID(intruder.ID, tx.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	curSvc, _ := newTestCurrencyService(db)
	txSvc := NewTransactionService(db, curSvc)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	usd := testutil.CreateTestCurrency(t, db, "32", "33")
	tx := testutil.CreateTestTransaction(t, db, user.ID, usd.ID, models.TransactionTypeBuy, "1", "30")

	testutil.AssertAppError(t, txSvc.DeleteTransaction(other.ID, tx.ID), "TRANSACTION_NOT_FOUND")
	testutil.AssertNoError(t, txSvc.DeleteTransaction(user.ID, tx.ID))

	_, err := txSvc.GetTransactionByID(user.ID, tx.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

	all, err := txSvc.ListAllUserTransactions(user.ID)
	testutil.AssertNoError(t, err)
	if len(all) != 0 {
		t.Errorf("deleted transaction must not reach aggregation, got %d", len(all))
	}

	testutil.AssertAppError(t, txSvc.DeleteTransaction(user.ID, tx.ID), "TRANSACTION_NOT_FOUND")
}

func TestListAllUserTransactions_Chronological(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	curSvc, _ := newTestCurrencyService(db)
	txSvc := NewTransactionService(db, curSvc)
	user := testutil.CreateTestUser(t, db)
	usd := testutil.CreateTestCurrency(t, db, "32", "33")

	later := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestTransactionAt(t, db, user.ID, usd.ID, models.TransactionTypeSell, "1", "30", later)
	testutil.CreateTestTransactionAt(t, db, user.ID, usd.ID, models.TransactionTypeBuy, "2", "29", earlier)

	all, err := txSvc.ListAllUserTransactions(user.ID)
	testutil.AssertNoError(t, err)
	if len(all) != 2 || !all[0].Date.Equal(earlier) {
		t.Errorf("expected chronological order, got %+v", all)
	}
}
