package portfolio

import (
	"errors"

	"github.com/shopspring/decimal"
)

// BaseAssetID identifies the base currency. It is never stored in a registry
// and is always quoted at 1 on both sides.
const BaseAssetID uint = 0

var (
	ErrUnknownAsset     = errors.New("portfolio: unknown asset")
	ErrPriceUnavailable = errors.New("portfolio: price unavailable")
	ErrInvalidAmount    = errors.New("portfolio: amount must be positive")
)

// Convert quotes how many units of toID the given amount of fromID is worth.
// The source leg is valued at its bid (what the market pays for it) and the
// target leg at its ask (what the market charges for it).
func Convert(registry *Registry, fromID, toID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	bid, err := legPrice(registry, fromID, (*Registry).BuyingPrice)
	if err != nil {
		return decimal.Zero, err
	}
	ask, err := legPrice(registry, toID, (*Registry).SellingPrice)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(bid).Div(ask), nil
}

func legPrice(registry *Registry, id uint, price func(*Registry, uint) decimal.Decimal) (decimal.Decimal, error) {
	if id == BaseAssetID {
		return decimal.NewFromInt(1), nil
	}
	if _, ok := registry.Lookup(id); !ok {
		return decimal.Zero, ErrUnknownAsset
	}
	p := price(registry, id)
	if !p.IsPositive() {
		return decimal.Zero, ErrPriceUnavailable
	}
	return p, nil
}
