package portfolio

import "github.com/shopspring/decimal"

// Asset is the current reference data for a gold type or foreign currency.
// Buying and Selling are the latest bid/ask quotes in the base currency.
type Asset struct {
	ID      uint   `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Buying  Amount `json:"buying"`
	Selling Amount `json:"selling"`
}

// Registry is an id-keyed view over a set of assets. It is built by the caller
// for the duration of a single aggregation and is never shared globally.
type Registry struct {
	assets map[uint]Asset
}

// NewRegistry indexes assets by ID. When two assets share an ID the later one wins.
func NewRegistry(assets []Asset) *Registry {
	r := &Registry{assets: make(map[uint]Asset, len(assets))}
	for _, a := range assets {
		r.assets[a.ID] = a
	}
	return r
}

// Lookup returns the asset with the given id.
func (r *Registry) Lookup(id uint) (Asset, bool) {
	if r == nil {
		return Asset{}, false
	}
	a, ok := r.assets[id]
	return a, ok
}

// Len returns the number of distinct assets.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.assets)
}

// SellingPrice returns the ask quote for id, or zero when the asset is unknown
// or its quote does not parse.
func (r *Registry) SellingPrice(id uint) decimal.Decimal {
	a, ok := r.Lookup(id)
	if !ok {
		return decimal.Zero
	}
	return quote(a.Selling)
}

// BuyingPrice returns the bid quote for id, or zero when unavailable.
func (r *Registry) BuyingPrice(id uint) decimal.Decimal {
	a, ok := r.Lookup(id)
	if !ok {
		return decimal.Zero
	}
	return quote(a.Buying)
}

func quote(a Amount) decimal.Decimal {
	d, ok := a.Decimal()
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
