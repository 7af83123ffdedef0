package services

import (
	"errors"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	apperrors "birikim/internal/errors"
	"birikim/internal/logger"
	"birikim/internal/metrics"
	"birikim/internal/models"
	"birikim/internal/portfolio"
)

const registryCacheKey = "registry"

// currencyService handles currency reference data and the quote registry.
type currencyService struct {
	db           *gorm.DB
	cache        *cache.Cache
	ttl          time.Duration
	baseCurrency string
	metrics      *metrics.Metrics
}

// NewCurrencyService creates a new CurrencyServicer. Registry snapshots are
// kept in c for ttl and dropped whenever quotes change.
func NewCurrencyService(db *gorm.DB, c *cache.Cache, ttl time.Duration, baseCurrency string, m *metrics.Metrics) CurrencyServicer {
	return &currencyService{
		db:           db,
		cache:        c,
		ttl:          ttl,
		baseCurrency: strings.ToUpper(baseCurrency),
		metrics:      m,
	}
}

// ListCurrencies returns all currencies ordered by code, optionally filtered by kind.
func (s *currencyService) ListCurrencies(kind *models.CurrencyKind) ([]models.Currency, error) {
	q := s.db.Order("code ASC")
	if kind != nil {
		q = q.Where("kind = ?", *kind)
	}

	var currencies []models.Currency
	if err := q.Find(&currencies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return currencies, nil
}

// GetCurrencyByID retrieves a currency by ID
func (s *currencyService) GetCurrencyByID(id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := s.db.First(&currency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCurrencyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its feed code, case-insensitively.
func (s *currencyService) GetCurrencyByCode(code string) (*models.Currency, error) {
	var currency models.Currency
	if err := s.db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCurrencyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &currency, nil
}

// UpsertQuotes creates or updates currencies by code. The whole batch is
// validated first and written atomically.
func (s *currencyService) UpsertQuotes(quotes []QuoteInput) (int, error) {
	if len(quotes) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one quote is required")
	}
	for i := range quotes {
		if err := s.normalizeQuote(&quotes[i]); err != nil {
			return 0, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range quotes {
			if err := upsertQuote(tx, &quotes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.cache.Delete(registryCacheKey)
	s.metrics.ObserveQuotes(len(quotes))
	logger.Get().Infow("quotes upserted", "count", len(quotes))
	return len(quotes), nil
}

func (s *currencyService) normalizeQuote(q *QuoteInput) error {
	q.Code = strings.ToUpper(strings.TrimSpace(q.Code))
	if q.Code == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidQuote, "quote code is required")
	}
	if q.Code == s.baseCurrency {
		return apperrors.WithMessage(apperrors.ErrInvalidQuote, "the base currency cannot be quoted")
	}
	if q.Kind != "" && q.Kind != models.CurrencyKindCurrency && q.Kind != models.CurrencyKindGold {
		return apperrors.WithMessage(apperrors.ErrInvalidQuote, "quote kind must be currency or gold")
	}
	for _, raw := range []string{q.Buying, q.Selling} {
		d, ok := portfolio.ParseAmount(raw)
		if !ok || d.IsNegative() {
			return apperrors.WithMessage(apperrors.ErrInvalidQuote, "invalid quote price for "+q.Code+": "+raw)
		}
	}
	if q.QuotedAt.IsZero() {
		q.QuotedAt = time.Now()
	}
	return nil
}

func upsertQuote(tx *gorm.DB, q *QuoteInput) error {
	var existing models.Currency
	err := tx.Where("code = ?", q.Code).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		name := q.Name
		if name == "" {
			name = q.Code
		}
		kind := q.Kind
		if kind == "" {
			kind = models.CurrencyKindCurrency
		}
		return tx.Create(&models.Currency{
			Code:     q.Code,
			Name:     name,
			Kind:     kind,
			Buying:   q.Buying,
			Selling:  q.Selling,
			QuotedAt: &q.QuotedAt,
		}).Error
	}
	if err != nil {
		return err
	}

	// Name and kind are kept unless the feed sends them.
	updates := map[string]interface{}{
		"buying":    q.Buying,
		"selling":   q.Selling,
		"quoted_at": q.QuotedAt,
	}
	if q.Name != "" {
		updates["name"] = q.Name
	}
	if q.Kind != "" {
		updates["kind"] = q.Kind
	}
	return tx.Model(&existing).Updates(updates).Error
}

// Registry returns an engine registry over every currency's current quote.
func (s *currencyService) Registry() (*portfolio.Registry, error) {
	if cached, found := s.cache.Get(registryCacheKey); found {
		s.metrics.ObserveRegistryCache(true)
		return cached.(*portfolio.Registry), nil
	}
	s.metrics.ObserveRegistryCache(false)

	currencies, err := s.ListCurrencies(nil)
	if err != nil {
		return nil, err
	}
	assets := make([]portfolio.Asset, len(currencies))
	for i := range currencies {
		assets[i] = currencies[i].Asset()
	}

	registry := portfolio.NewRegistry(assets)
	s.cache.Set(registryCacheKey, registry, s.ttl)
	return registry, nil
}
