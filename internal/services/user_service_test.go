package services

import (
	"testing"

	"birikim/internal/models"
	"birikim/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("  Ayse@Example.COM ", "password123", "Ayşe", "Yılmaz")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "ayse@example.com" {
			t.Errorf("expected normalized email, got %s", user.Email)
		}
		if !user.IsActive {
			t.Error("expected user to be active")
		}
		if user.Password == "password123" {
			t.Error("password should be hashed, not stored as plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
			t.Error("password hash should be valid bcrypt")
		}
	})

	t.Run("duplicate_email_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("DUP@example.com", "password456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	for _, tc := range []struct{ name, email, password string }{
		{"empty_email", "", "password123"},
		{"blank_email", "   ", "password123"},
		{"empty_password", "test@example.com", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewUserService(db)

			_, err := svc.CreateUser(tc.email, tc.password, "", "")
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created := testutil.CreateTestUserWithEmail(t, db, "found@example.com")
	inactive := testutil.CreateTestUserWithEmail(t, db, "inactive@example.com")
	db.Model(inactive).Update("is_active", false)

	t.Run("found", func(t *testing.T) {
		user, err := svc.GetUserByEmail("Found@Example.com")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user ID %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetUserByEmail("nonexistent@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("inactive_user", func(t *testing.T) {
		_, err := svc.GetUserByEmail("inactive@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created := testutil.CreateTestUser(t, db)

	user, err := svc.GetUserByID(created.ID)
	testutil.AssertNoError(t, err)
	if user.Email != created.Email {
		t.Errorf("expected email %s, got %s", created.Email, user.Email)
	}

	_, err = svc.GetUserByID(99999)
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user := testutil.CreateTestUser(t, db)
	if !svc.VerifyPassword(user, testutil.TestPassword) {
		t.Error("expected password verification to succeed")
	}
	if svc.VerifyPassword(user, "wrongpassword") {
		t.Error("expected password verification to fail")
	}
}

func TestRecordLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user := testutil.CreateTestUser(t, db)
	testutil.AssertNoError(t, svc.RecordLogin(user.ID))

	var reloaded models.User
	db.First(&reloaded, user.ID)
	if reloaded.LastLoginAt == nil {
		t.Error("expected LastLoginAt to be set")
	}

	testutil.AssertAppError(t, svc.RecordLogin(99999), "USER_NOT_FOUND")
}
