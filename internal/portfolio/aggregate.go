// Package portfolio turns a user's buy/sell history into holdings valued at
// current market quotes, using weighted-average cost accounting.
//
// Everything in this package is a pure function of its arguments: no I/O,
// no logging and no package-level state.
package portfolio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the side of a transaction.
type Direction string

const (
	Buy  Direction = "buy"
	Sell Direction = "sell"
)

var hundred = decimal.NewFromInt(100)

// Transaction is one buy or sell event for a single asset.
type Transaction struct {
	ID         uint      `json:"id,omitempty"`
	AssetID    uint      `json:"asset_id"`
	Direction  Direction `json:"direction"`
	Quantity   Amount    `json:"quantity"`
	UnitPrice  Amount    `json:"unit_price"`
	OccurredAt time.Time `json:"occurred_at"`
	Location   string    `json:"location,omitempty"`
}

// Holding is the derived position in one asset after replaying its history.
type Holding struct {
	AssetID           uint            `json:"asset_id"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	CostBasisTotal    decimal.Decimal `json:"cost_basis_total"`
	AverageCost       decimal.Decimal `json:"average_cost"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent decimal.Decimal `json:"profit_loss_percent"`
	Locations         []string        `json:"locations"`
}

// Totals sums cost and value over every included holding.
type Totals struct {
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalValue        decimal.Decimal `json:"total_value"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent decimal.Decimal `json:"profit_loss_percent"`
}

// Diagnostics counts inputs that were dropped or degraded during aggregation.
type Diagnostics struct {
	// SkippedTransactions had an unparseable or non-positive quantity or
	// price, or an unknown direction.
	SkippedTransactions int `json:"skipped_transactions"`
	// AnomalousAssets sold more than was ever bought.
	AnomalousAssets []uint `json:"anomalous_assets"`
	// ClosedAssets were sold down to exactly zero.
	ClosedAssets []uint `json:"closed_assets"`
}

// Result is the output of Aggregate.
type Result struct {
	Holdings    []Holding   `json:"holdings"`
	Totals      Totals      `json:"totals"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// entry is a transaction whose numeric fields have already been parsed.
type entry struct {
	id         uint
	direction  Direction
	quantity   decimal.Decimal
	unitPrice  decimal.Decimal
	occurredAt time.Time
	location   string
}

// Aggregate replays transactions per asset in chronological order and values
// the remaining positions with the registry's selling quotes. Holdings are
// ordered by current value, highest first. Assets whose remaining quantity is
// zero or negative are left out of both holdings and totals.
//
// Aggregate never fails; malformed transactions are skipped and reported in
// Result.Diagnostics.
func Aggregate(transactions []Transaction, registry *Registry) Result {
	diag := Diagnostics{AnomalousAssets: []uint{}, ClosedAssets: []uint{}}
	byAsset := make(map[uint][]entry)

	for i := range transactions {
		tx := &transactions[i]
		if tx.Direction != Buy && tx.Direction != Sell {
			diag.SkippedTransactions++
			continue
		}
		qty, ok := parsePositive(tx.Quantity)
		if !ok {
			diag.SkippedTransactions++
			continue
		}
		price, ok := parsePositive(tx.UnitPrice)
		if !ok {
			diag.SkippedTransactions++
			continue
		}
		byAsset[tx.AssetID] = append(byAsset[tx.AssetID], entry{
			id:         tx.ID,
			direction:  tx.Direction,
			quantity:   qty,
			unitPrice:  price,
			occurredAt: tx.OccurredAt,
			location:   tx.Location,
		})
	}

	assetIDs := make([]uint, 0, len(byAsset))
	for id := range byAsset {
		assetIDs = append(assetIDs, id)
	}
	sort.Slice(assetIDs, func(i, j int) bool { return assetIDs[i] < assetIDs[j] })

	holdings := make([]Holding, 0, len(assetIDs))
	for _, id := range assetIDs {
		h := replay(id, byAsset[id])
		switch h.RemainingQuantity.Sign() {
		case 1:
			value(&h, registry.SellingPrice(id))
			holdings = append(holdings, h)
		case 0:
			diag.ClosedAssets = append(diag.ClosedAssets, id)
		default:
			diag.AnomalousAssets = append(diag.AnomalousAssets, id)
		}
	}

	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].CurrentValue.GreaterThan(holdings[j].CurrentValue)
	})

	return Result{
		Holdings:    holdings,
		Totals:      sum(holdings),
		Diagnostics: diag,
	}
}

// replay applies one asset's entries in chronological order.
func replay(assetID uint, entries []entry) Holding {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.occurredAt.Equal(b.occurredAt) {
			return a.occurredAt.Before(b.occurredAt)
		}
		if a.direction != b.direction {
			return a.direction == Buy
		}
		return a.id < b.id
	})

	remaining := decimal.Zero
	cost := decimal.Zero
	seen := make(map[string]struct{})

	for _, e := range entries {
		if e.location != "" {
			seen[e.location] = struct{}{}
		}
		switch e.direction {
		case Buy:
			remaining = remaining.Add(e.quantity)
			cost = cost.Add(e.quantity.Mul(e.unitPrice))
		case Sell:
			if remaining.IsPositive() {
				avg := cost.Div(remaining)
				remaining = remaining.Sub(e.quantity)
				cost = cost.Sub(e.quantity.Mul(avg))
			} else {
				// Selling from an empty or short position leaves cost untouched.
				remaining = remaining.Sub(e.quantity)
			}
		}
	}

	h := Holding{
		AssetID:           assetID,
		RemainingQuantity: remaining,
		AverageCost:       decimal.Zero,
		CostBasisTotal:    decimal.Zero,
		CurrentValue:      decimal.Zero,
		ProfitLoss:        decimal.Zero,
		ProfitLossPercent: decimal.Zero,
		Locations:         make([]string, 0, len(seen)),
	}
	if remaining.IsPositive() {
		h.CostBasisTotal = cost
		h.AverageCost = cost.Div(remaining)
	}
	for loc := range seen {
		h.Locations = append(h.Locations, loc)
	}
	sort.Strings(h.Locations)
	return h
}

// value prices a holding with positive remaining quantity.
func value(h *Holding, sellingPrice decimal.Decimal) {
	h.CurrentValue = h.RemainingQuantity.Mul(sellingPrice)
	h.ProfitLoss = h.CurrentValue.Sub(h.CostBasisTotal)
	h.ProfitLossPercent = percent(h.ProfitLoss, h.CostBasisTotal)
}

func sum(holdings []Holding) Totals {
	t := Totals{
		TotalCost:  decimal.Zero,
		TotalValue: decimal.Zero,
	}
	for i := range holdings {
		t.TotalCost = t.TotalCost.Add(holdings[i].CostBasisTotal)
		t.TotalValue = t.TotalValue.Add(holdings[i].CurrentValue)
	}
	t.ProfitLoss = t.TotalValue.Sub(t.TotalCost)
	t.ProfitLossPercent = percent(t.ProfitLoss, t.TotalCost)
	return t
}

func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Rounded returns a copy with every money field rounded to two places, for display.
func (h Holding) Rounded() Holding {
	h.CostBasisTotal = h.CostBasisTotal.Round(2)
	h.AverageCost = h.AverageCost.Round(2)
	h.CurrentValue = h.CurrentValue.Round(2)
	h.ProfitLoss = h.ProfitLoss.Round(2)
	h.ProfitLossPercent = h.ProfitLossPercent.Round(2)
	h.Locations = append([]string(nil), h.Locations...)
	return h
}

// Rounded returns a copy with every field rounded to two places, for display.
func (t Totals) Rounded() Totals {
	return Totals{
		TotalCost:         t.TotalCost.Round(2),
		TotalValue:        t.TotalValue.Round(2),
		ProfitLoss:        t.ProfitLoss.Round(2),
		ProfitLossPercent: t.ProfitLossPercent.Round(2),
	}
}
