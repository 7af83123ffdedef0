package services

import (
	"errors"
	"strings"
	"time"

	apperrors "birikim/internal/errors"
	"birikim/internal/logger"
	"birikim/internal/metrics"
	"birikim/internal/models"
	"birikim/internal/portfolio"
)

// portfolioService values a user's transaction history at current quotes.
type portfolioService struct {
	transactionService TransactionServicer
	currencyService    CurrencyServicer
	metrics            *metrics.Metrics
	baseCurrency       string
	now                func() time.Time
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(transactionService TransactionServicer, currencyService CurrencyServicer, m *metrics.Metrics, baseCurrency string) PortfolioServicer {
	return &portfolioService{
		transactionService: transactionService,
		currencyService:    currencyService,
		metrics:            m,
		baseCurrency:       strings.ToUpper(baseCurrency),
		now:                time.Now,
	}
}

// GetPortfolio aggregates the user's holdings. Money fields are rounded to
// two places; the engine itself works at full precision.
func (s *portfolioService) GetPortfolio(userID uint) (*PortfolioView, error) {
	transactions, err := s.transactionService.ListAllUserTransactions(userID)
	if err != nil {
		return nil, err
	}
	registry, err := s.currencyService.Registry()
	if err != nil {
		return nil, err
	}

	input := make([]portfolio.Transaction, len(transactions))
	for i := range transactions {
		input[i] = transactions[i].PortfolioTransaction()
	}

	start := time.Now()
	result := portfolio.Aggregate(input, registry)
	s.metrics.ObserveAggregation(time.Since(start), result.Diagnostics.SkippedTransactions, len(result.Diagnostics.AnomalousAssets))

	if d := result.Diagnostics; d.SkippedTransactions > 0 || len(d.AnomalousAssets) > 0 {
		logger.Get().Warnw("portfolio aggregated with degraded input",
			"user_id", userID,
			"skipped_transactions", d.SkippedTransactions,
			"anomalous_assets", d.AnomalousAssets,
		)
	}

	view := &PortfolioView{
		BaseCurrency: s.baseCurrency,
		ValuedAt:     s.now(),
		Holdings:     make([]HoldingView, len(result.Holdings)),
		Totals:       result.Totals.Rounded(),
		Diagnostics:  result.Diagnostics,
	}
	for i, h := range result.Holdings {
		hv := HoldingView{Holding: h.Rounded()}
		if asset, ok := registry.Lookup(h.AssetID); ok {
			hv.Code = asset.Code
			hv.Name = asset.Name
		}
		view.Holdings[i] = hv
	}
	s.fillKinds(view.Holdings)
	return view, nil
}

// fillKinds copies the currency kind onto each holding. A lookup failure only
// leaves the kind blank.
func (s *portfolioService) fillKinds(holdings []HoldingView) {
	if len(holdings) == 0 {
		return
	}
	currencies, err := s.currencyService.ListCurrencies(nil)
	if err != nil {
		logger.Get().Warnw("failed to load currency kinds", "error", err)
		return
	}
	kinds := make(map[uint]models.CurrencyKind, len(currencies))
	for i := range currencies {
		kinds[currencies[i].ID] = currencies[i].Kind
	}
	for i := range holdings {
		holdings[i].Kind = kinds[holdings[i].AssetID]
	}
}

// Convert quotes how much of `to` the given amount of `from` buys. Either side
// may be the base currency code.
func (s *portfolioService) Convert(from, to, amount string) (*ConversionQuote, error) {
	qty, ok := portfolio.ParseAmount(amount)
	if !ok || !qty.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	fromID, fromCode, err := s.resolve(from)
	if err != nil {
		return nil, err
	}
	toID, toCode, err := s.resolve(to)
	if err != nil {
		return nil, err
	}

	registry, err := s.currencyService.Registry()
	if err != nil {
		return nil, err
	}

	result, err := portfolio.Convert(registry, fromID, toID, qty)
	switch {
	case errors.Is(err, portfolio.ErrUnknownAsset):
		return nil, apperrors.ErrCurrencyNotFound
	case errors.Is(err, portfolio.ErrPriceUnavailable):
		return nil, apperrors.ErrPriceUnavailable
	case errors.Is(err, portfolio.ErrInvalidAmount):
		return nil, apperrors.ErrInvalidAmount
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ConversionQuote{
		From:   fromCode,
		To:     toCode,
		Amount: qty,
		Result: result.Round(4),
	}, nil
}

func (s *portfolioService) resolve(code string) (uint, string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "currency code is required")
	}
	if code == s.baseCurrency {
		return portfolio.BaseAssetID, code, nil
	}
	currency, err := s.currencyService.GetCurrencyByCode(code)
	if err != nil {
		return 0, "", err
	}
	return currency.ID, currency.Code, nil
}
