package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "birikim/internal/errors"
	"birikim/internal/models"
	"birikim/internal/portfolio"
	"birikim/internal/services"
)

// --- mock currency service ---

type mockCurrencyService struct {
	listCurrenciesFn    func(kind *models.CurrencyKind) ([]models.Currency, error)
	getCurrencyByIDFn   func(id uint) (*models.Currency, error)
	getCurrencyByCodeFn func(code string) (*models.Currency, error)
	upsertQuotesFn      func(quotes []services.QuoteInput) (int, error)
	registryFn          func() (*portfolio.Registry, error)
}

var _ services.CurrencyServicer = (*mockCurrencyService)(nil)

func (m *mockCurrencyService) ListCurrencies(kind *models.CurrencyKind) ([]models.Currency, error) {
	if m.listCurrenciesFn != nil {
		return m.listCurrenciesFn(kind)
	}
	return nil, nil
}

func (m *mockCurrencyService) GetCurrencyByID(id uint) (*models.Currency, error) {
	if m.getCurrencyByIDFn != nil {
		return m.getCurrencyByIDFn(id)
	}
	return &models.Currency{}, nil
}

func (m *mockCurrencyService) GetCurrencyByCode(code string) (*models.Currency, error) {
	if m.getCurrencyByCodeFn != nil {
		return m.getCurrencyByCodeFn(code)
	}
	return &models.Currency{}, nil
}

func (m *mockCurrencyService) UpsertQuotes(quotes []services.QuoteInput) (int, error) {
	if m.upsertQuotesFn != nil {
		return m.upsertQuotesFn(quotes)
	}
	return len(quotes), nil
}

func (m *mockCurrencyService) Registry() (*portfolio.Registry, error) {
	if m.registryFn != nil {
		return m.registryFn()
	}
	return portfolio.NewRegistry(nil), nil
}

func setupCurrencyRouter(handler *CurrencyHandler) *gin.Engine {
	r := gin.New()
	r.GET("/currencies", handler.ListCurrencies)
	r.GET("/currencies/:id", handler.GetCurrency)
	r.POST("/pipeline/quotes", handler.UpsertQuotes)
	return r
}

func TestCurrencyHandler_ListCurrencies(t *testing.T) {
	t.Run("returns 200 with currencies", func(t *testing.T) {
		var gotKind *models.CurrencyKind
		svc := &mockCurrencyService{
			listCurrenciesFn: func(kind *models.CurrencyKind) ([]models.Currency, error) {
				gotKind = kind
				return []models.Currency{
					{Base: models.Base{ID: 1}, Code: "GRA", Name: "Gram Altin", Kind: models.CurrencyKindGold, Buying: "2450", Selling: "2475"},
				}, nil
			},
		}
		r := setupCurrencyRouter(NewCurrencyHandler(svc))

		rec := doRequest(r, "GET", "/currencies?kind=gold", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotKind == nil || *gotKind != models.CurrencyKindGold {
			t.Errorf("expected gold filter, got %v", gotKind)
		}
		list := parseJSON(t, rec)["currencies"].([]interface{})
		if len(list) != 1 {
			t.Fatalf("expected 1 currency, got %d", len(list))
		}
		if list[0].(map[string]interface{})["selling"] != "2475" {
			t.Errorf("expected selling 2475, got %v", list[0])
		}
	})

	t.Run("returns empty array not null", func(t *testing.T) {
		r := setupCurrencyRouter(NewCurrencyHandler(&mockCurrencyService{}))

		rec := doRequest(r, "GET", "/currencies", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if _, ok := parseJSON(t, rec)["currencies"].([]interface{}); !ok {
			t.Errorf("expected currencies array, got %s", rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		r := setupCurrencyRouter(NewCurrencyHandler(&mockCurrencyService{}))

		rec := doRequest(r, "GET", "/currencies?kind=crypto", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestCurrencyHandler_GetCurrency(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		svc := &mockCurrencyService{
			getCurrencyByIDFn: func(id uint) (*models.Currency, error) {
				return &models.Currency{Base: models.Base{ID: id}, Code: "USD"}, nil
			},
		}
		r := setupCurrencyRouter(NewCurrencyHandler(svc))

		rec := doRequest(r, "GET", "/currencies/3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		cur := parseJSON(t, rec)["currency"].(map[string]interface{})
		if cur["code"] != "USD" {
			t.Errorf("expected USD, got %v", cur["code"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCurrencyService{
			getCurrencyByIDFn: func(_ uint) (*models.Currency, error) {
				return nil, apperrors.ErrCurrencyNotFound
			},
		}
		r := setupCurrencyRouter(NewCurrencyHandler(svc))

		rec := doRequest(r, "GET", "/currencies/3", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CURRENCY_NOT_FOUND")
	})

	t.Run("returns 400 on zero id", func(t *testing.T) {
		r := setupCurrencyRouter(NewCurrencyHandler(&mockCurrencyService{}))

		rec := doRequest(r, "GET", "/currencies/0", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCurrencyHandler_UpsertQuotes(t *testing.T) {
	t.Run("returns 200 with count", func(t *testing.T) {
		var got []services.QuoteInput
		svc := &mockCurrencyService{
			upsertQuotesFn: func(quotes []services.QuoteInput) (int, error) {
				got = quotes
				return len(quotes), nil
			},
		}
		r := setupCurrencyRouter(NewCurrencyHandler(svc))

		rec := doRequest(r, "POST", "/pipeline/quotes", `{"quotes":[
			{"code":"USD","name":"Amerikan Dolari","buying":"32,10","selling":"32,25"},
			{"code":"CEYREK","name":"Ceyrek Altin","kind":"gold","buying":4050,"selling":4120,"quoted_at":"2026-03-01T09:00:00Z"}
		]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["quotes_upserted"].(float64) != 2 {
			t.Errorf("expected quotes_upserted=2")
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 quotes passed, got %d", len(got))
		}
		if got[0].Buying != "32,10" || got[1].Selling != "4120" {
			t.Errorf("expected raw prices passed through, got %+v", got)
		}
		if got[1].Kind != models.CurrencyKindGold || got[1].QuotedAt.IsZero() {
			t.Errorf("expected gold kind with quoted_at, got %+v", got[1])
		}
		if !got[0].QuotedAt.IsZero() {
			t.Errorf("expected zero quoted_at when omitted, got %v", got[0].QuotedAt)
		}
	})

	t.Run("returns 400 on empty batch", func(t *testing.T) {
		r := setupCurrencyRouter(NewCurrencyHandler(&mockCurrencyService{}))

		rec := doRequest(r, "POST", "/pipeline/quotes", `{"quotes":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative price", func(t *testing.T) {
		r := setupCurrencyRouter(NewCurrencyHandler(&mockCurrencyService{}))

		rec := doRequest(r, "POST", "/pipeline/quotes", `{"quotes":[{"code":"USD","buying":"-1","selling":"32"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on lower-case code", func(t *testing.T) {
		r := setupCurrencyRouter(NewCurrencyHandler(&mockCurrencyService{}))

		rec := doRequest(r, "POST", "/pipeline/quotes", `{"quotes":[{"code":"usd","buying":"1","selling":"1"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("propagates service validation errors", func(t *testing.T) {
		svc := &mockCurrencyService{
			upsertQuotesFn: func(_ []services.QuoteInput) (int, error) {
				return 0, apperrors.WithMessage(apperrors.ErrInvalidQuote, "the base currency cannot be quoted")
			},
		}
		r := setupCurrencyRouter(NewCurrencyHandler(svc))

		rec := doRequest(r, "POST", "/pipeline/quotes", `{"quotes":[{"code":"TRY","buying":"1","selling":"1"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_QUOTE")
	})
}
