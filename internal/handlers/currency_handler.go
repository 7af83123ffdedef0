package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "birikim/internal/errors"
	"birikim/internal/models"
	"birikim/internal/portfolio"
	"birikim/internal/services"
)

// CurrencyHandler serves currency reference data and accepts quote updates.
type CurrencyHandler struct {
	currencyService services.CurrencyServicer
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(currencyService services.CurrencyServicer) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// QuoteRequest is a single quote pushed by the market-data feed. Prices may be
// JSON numbers or strings in either decimal locale.
type QuoteRequest struct {
	Code     string              `json:"code" binding:"required,currency_code"`
	Name     string              `json:"name" binding:"max=100"`
	Kind     models.CurrencyKind `json:"kind" binding:"omitempty,currency_kind"`
	Buying   portfolio.Amount    `json:"buying" binding:"required,quote_price" swaggertype:"string"`
	Selling  portfolio.Amount    `json:"selling" binding:"required,quote_price" swaggertype:"string"`
	QuotedAt *time.Time          `json:"quoted_at"`
}

// UpsertQuotesRequest is a batch of quotes.
type UpsertQuotesRequest struct {
	Quotes []QuoteRequest `json:"quotes" binding:"required,min=1,max=500,dive"`
}

// ListCurrencies returns all tradable currencies and gold types.
// @Summary     List currencies
// @Description List currencies and gold types with their latest quotes
// @Tags        currencies
// @Produce     json
// @Param       kind query string false "Filter by kind (currency, gold)"
// @Success     200 {object} map[string][]models.Currency "Currencies"
// @Failure     400 {object} ErrorResponse "Invalid kind"
// @Router      /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	var kind *models.CurrencyKind
	if v := c.Query("kind"); v != "" {
		k := models.CurrencyKind(v)
		if k != models.CurrencyKindCurrency && k != models.CurrencyKindGold {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid kind, must be currency or gold"))
			return
		}
		kind = &k
	}

	currencies, err := h.currencyService.ListCurrencies(kind)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if currencies == nil {
		currencies = []models.Currency{}
	}

	c.JSON(http.StatusOK, gin.H{"currencies": currencies})
}

// GetCurrency returns one currency by ID.
// @Summary     Get currency
// @Tags        currencies
// @Produce     json
// @Param       id path int true "Currency ID"
// @Success     200 {object} map[string]models.Currency "Currency"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Currency not found"
// @Router      /currencies/{id} [get]
func (h *CurrencyHandler) GetCurrency(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currency": currency})
}

// UpsertQuotes stores a batch of quotes from the market-data feed.
// @Summary     Upsert quotes
// @Description Create or update currency quotes by code (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header   string              true "Pipeline API key"
// @Param       request   body     UpsertQuotesRequest true "Quotes"
// @Success     200       {object} map[string]int      "Quotes upserted count"
// @Failure     400       {object} ErrorResponse       "Invalid input"
// @Failure     401       {object} ErrorResponse       "Invalid API key"
// @Failure     503       {object} ErrorResponse       "Pipeline not configured"
// @Router      /pipeline/quotes [post]
func (h *CurrencyHandler) UpsertQuotes(c *gin.Context) {
	var req UpsertQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	quotes := make([]services.QuoteInput, len(req.Quotes))
	for i, q := range req.Quotes {
		quotes[i] = services.QuoteInput{
			Code:    q.Code,
			Name:    q.Name,
			Kind:    q.Kind,
			Buying:  string(q.Buying),
			Selling: string(q.Selling),
		}
		if q.QuotedAt != nil {
			quotes[i].QuotedAt = *q.QuotedAt
		}
	}

	count, err := h.currencyService.UpsertQuotes(quotes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quotes_upserted": count})
}
