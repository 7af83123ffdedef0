// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"birikim/internal/models"
	"birikim/internal/portfolio"
)

// Codes are upper-case feed symbols such as USD, GRA or CEYREK.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]{1,19}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerOn(v)
	}
}

func registerOn(v *validator.Validate) {
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("quote_price", validateQuotePrice)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("currency_kind", validateCurrencyKind)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
}

// validateDecimalAmount accepts strictly positive decimals in either locale.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, ok := portfolio.ParseAmount(fl.Field().String())
	return ok && d.IsPositive()
}

// validateQuotePrice accepts zero, since feeds publish 0 for suspended quotes.
func validateQuotePrice(fl validator.FieldLevel) bool {
	d, ok := portfolio.ParseAmount(fl.Field().String())
	return ok && !d.IsNegative()
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeBuy, models.TransactionTypeSell:
		return true
	}
	return false
}

func validateCurrencyKind(fl validator.FieldLevel) bool {
	switch models.CurrencyKind(fl.Field().String()) {
	case models.CurrencyKindCurrency, models.CurrencyKindGold:
		return true
	}
	return false
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}
