package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "birikim/internal/errors"
	"birikim/internal/services"
)

// PortfolioHandler serves portfolio valuation and currency conversion.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetPortfolio returns the authenticated user's valued holdings.
// @Summary     Get portfolio
// @Description Aggregate the user's transactions into holdings valued at the latest quotes
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioView "Portfolio"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.portfolioService.GetPortfolio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Convert quotes an amount of one asset in another.
// @Summary     Convert between assets
// @Description Convert an amount using the source bid and the target ask
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       from   query string true "Source currency code"
// @Param       to     query string true "Target currency code"
// @Param       amount query string true "Amount of the source currency"
// @Success     200 {object} services.ConversionQuote "Conversion"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Currency not found"
// @Failure     422 {object} ErrorResponse "Price unavailable"
// @Router      /portfolio/convert [get]
func (h *PortfolioHandler) Convert(c *gin.Context) {
	from, to, amount := c.Query("from"), c.Query("to"), c.Query("amount")
	if from == "" || to == "" || amount == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from, to and amount are required"))
		return
	}

	quote, err := h.portfolioService.Convert(from, to, amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
