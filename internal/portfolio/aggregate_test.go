package portfolio

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(days int) time.Time { return day0.AddDate(0, 0, days) }

func buy(asset uint, qty, price string, days int) Transaction {
	return Transaction{AssetID: asset, Direction: Buy, Quantity: Amount(qty), UnitPrice: Amount(price), OccurredAt: at(days)}
}

func sell(asset uint, qty, price string, days int) Transaction {
	return Transaction{AssetID: asset, Direction: Sell, Quantity: Amount(qty), UnitPrice: Amount(price), OccurredAt: at(days)}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s=%s, got %s", name, want, got.String())
	}
}

func testRegistry() *Registry {
	return NewRegistry([]Asset{
		{ID: 1, Code: "GRA", Name: "Gram Altın", Buying: "240", Selling: "250"},
		{ID: 2, Code: "USD", Name: "Amerikan Doları", Buying: "32,10", Selling: "32,50"},
		{ID: 3, Code: "EUR", Name: "Euro", Buying: "35", Selling: "35.5"},
	})
}

func TestAggregate_Scenarios(t *testing.T) {
	t.Run("weighted_average_of_two_buys", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "10", "100", 0),
			buy(1, "10", "200", 1),
		}, testRegistry())

		if len(res.Holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(res.Holdings))
		}
		h := res.Holdings[0]
		assertDecimal(t, "remaining", h.RemainingQuantity, "20")
		assertDecimal(t, "cost", h.CostBasisTotal, "3000")
		assertDecimal(t, "average", h.AverageCost, "150")
		assertDecimal(t, "value", h.CurrentValue, "5000")
		assertDecimal(t, "profit_loss", h.ProfitLoss, "2000")
		assertDecimal(t, "profit_loss_percent", h.ProfitLossPercent.Round(2), "66.67")
	})

	t.Run("sell_keeps_average_cost", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "10", "100", 0),
			sell(1, "4", "999", 1),
		}, testRegistry())

		if len(res.Holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(res.Holdings))
		}
		h := res.Holdings[0]
		assertDecimal(t, "remaining", h.RemainingQuantity, "6")
		assertDecimal(t, "average", h.AverageCost, "100")
		assertDecimal(t, "cost", h.CostBasisTotal, "600")
	})

	t.Run("sell_without_prior_buy_is_excluded", func(t *testing.T) {
		res := Aggregate([]Transaction{sell(1, "5", "100", 0)}, testRegistry())

		if len(res.Holdings) != 0 {
			t.Fatalf("expected no holdings, got %d", len(res.Holdings))
		}
		assertDecimal(t, "total_cost", res.Totals.TotalCost, "0")
		assertDecimal(t, "total_value", res.Totals.TotalValue, "0")
		if !reflect.DeepEqual(res.Diagnostics.AnomalousAssets, []uint{1}) {
			t.Errorf("expected anomalous assets [1], got %v", res.Diagnostics.AnomalousAssets)
		}
	})

	t.Run("liquidated_asset_does_not_reach_totals", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "2", "100", 0),
			sell(1, "2", "150", 1),
			buy(2, "3", "30", 0),
		}, testRegistry())

		if len(res.Holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(res.Holdings))
		}
		if res.Holdings[0].AssetID != 2 {
			t.Errorf("expected asset 2, got %d", res.Holdings[0].AssetID)
		}
		assertDecimal(t, "total_cost", res.Totals.TotalCost, "90")
		assertDecimal(t, "total_value", res.Totals.TotalValue, "97.5")
		assertDecimal(t, "profit_loss", res.Totals.ProfitLoss, "7.5")
		if !reflect.DeepEqual(res.Diagnostics.ClosedAssets, []uint{1}) {
			t.Errorf("expected closed assets [1], got %v", res.Diagnostics.ClosedAssets)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		res := Aggregate(nil, testRegistry())

		if res.Holdings == nil || len(res.Holdings) != 0 {
			t.Fatalf("expected empty non-nil holdings, got %v", res.Holdings)
		}
		assertDecimal(t, "total_cost", res.Totals.TotalCost, "0")
		assertDecimal(t, "total_value", res.Totals.TotalValue, "0")
		assertDecimal(t, "profit_loss", res.Totals.ProfitLoss, "0")
		assertDecimal(t, "profit_loss_percent", res.Totals.ProfitLossPercent, "0")

		raw, err := json.Marshal(res.Diagnostics)
		if err != nil {
			t.Fatalf("marshal diagnostics: %v", err)
		}
		want := `{"skipped_transactions":0,"anomalous_assets":[],"closed_assets":[]}`
		if string(raw) != want {
			t.Errorf("diagnostics json = %s, want %s", raw, want)
		}
	})
}

func TestAggregate_Properties(t *testing.T) {
	history := []Transaction{
		{ID: 1, AssetID: 1, Direction: Buy, Quantity: "5", UnitPrice: "100", OccurredAt: at(0), Location: "Kapalıçarşı"},
		{ID: 2, AssetID: 2, Direction: Buy, Quantity: "100", UnitPrice: "30", OccurredAt: at(1), Location: "Bank"},
		{ID: 3, AssetID: 1, Direction: Sell, Quantity: "2", UnitPrice: "120", OccurredAt: at(2)},
		{ID: 4, AssetID: 1, Direction: Buy, Quantity: "4", UnitPrice: "130", OccurredAt: at(3), Location: "Bank"},
		{ID: 5, AssetID: 3, Direction: Buy, Quantity: "10", UnitPrice: "34", OccurredAt: at(3)},
		{ID: 6, AssetID: 2, Direction: Sell, Quantity: "40", UnitPrice: "33", OccurredAt: at(4)},
		{ID: 7, AssetID: 3, Direction: Sell, Quantity: "10", UnitPrice: "36", OccurredAt: at(5)},
	}

	t.Run("idempotent", func(t *testing.T) {
		first := Aggregate(history, testRegistry())
		second := Aggregate(history, testRegistry())
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical results, got %+v and %+v", first, second)
		}
	})

	t.Run("input_order_does_not_matter", func(t *testing.T) {
		want := Aggregate(history, testRegistry())
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			shuffled := append([]Transaction(nil), history...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

			got := Aggregate(shuffled, testRegistry())
			if !reflect.DeepEqual(want, got) {
				t.Fatalf("shuffle %d changed the result: want %+v, got %+v", i, want, got)
			}
		}
	})

	t.Run("timestamps_drive_order", func(t *testing.T) {
		// The same two trades in a different chronological order leave a
		// different position behind.
		buyFirst := Aggregate([]Transaction{
			buy(1, "10", "100", 0),
			sell(1, "10", "100", 1),
			buy(1, "10", "200", 2),
		}, testRegistry())
		sellFirst := Aggregate([]Transaction{
			buy(1, "10", "100", 1),
			sell(1, "10", "100", 0),
			buy(1, "10", "200", 2),
		}, testRegistry())

		assertDecimal(t, "buy_first_average", buyFirst.Holdings[0].AverageCost, "200")
		assertDecimal(t, "sell_first_average", sellFirst.Holdings[0].AverageCost, "300")
	})

	t.Run("input_slice_is_not_mutated", func(t *testing.T) {
		in := []Transaction{buy(1, "1", "10", 5), buy(1, "1", "10", 0)}
		snapshot := append([]Transaction(nil), in...)
		Aggregate(in, testRegistry())
		if !reflect.DeepEqual(in, snapshot) {
			t.Errorf("expected input untouched, got %+v", in)
		}
	})

	t.Run("pure_buys_are_conserved", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "1.5", "100", 0),
			buy(1, "2.25", "110.40", 1),
			buy(1, "0.25", "90", 2),
		}, testRegistry())

		h := res.Holdings[0]
		assertDecimal(t, "remaining", h.RemainingQuantity, "4")
		// 150 + 248.4 + 22.5
		assertDecimal(t, "cost", h.CostBasisTotal, "420.9")
	})

	t.Run("partial_sells_keep_average", func(t *testing.T) {
		for _, qty := range []string{"1", "2.5", "7", "9.99"} {
			res := Aggregate([]Transaction{
				buy(1, "4", "120", 0),
				buy(1, "6", "95", 1),
				sell(1, qty, "1", 2),
			}, testRegistry())

			assertDecimal(t, "average after selling "+qty, res.Holdings[0].AverageCost, "105")
			remaining := dec("10").Sub(dec(qty))
			assertDecimal(t, "remaining after selling "+qty, res.Holdings[0].RemainingQuantity, remaining.String())
			assertDecimal(t, "cost after selling "+qty, res.Holdings[0].CostBasisTotal, remaining.Mul(dec("105")).String())
		}
	})

	t.Run("locations_are_a_sorted_set", func(t *testing.T) {
		res := Aggregate(history, testRegistry())
		for _, h := range res.Holdings {
			if h.AssetID == 1 && !reflect.DeepEqual(h.Locations, []string{"Bank", "Kapalıçarşı"}) {
				t.Errorf("expected [Bank Kapalıçarşı], got %v", h.Locations)
			}
		}
	})

	t.Run("sorted_by_value_descending", func(t *testing.T) {
		res := Aggregate(history, testRegistry())
		if len(res.Holdings) != 2 {
			t.Fatalf("expected 2 holdings, got %d", len(res.Holdings))
		}
		// asset 1: 7 * 250 = 1750, asset 2: 60 * 32.5 = 1950
		if res.Holdings[0].AssetID != 2 || res.Holdings[1].AssetID != 1 {
			t.Errorf("expected order [2 1], got [%d %d]", res.Holdings[0].AssetID, res.Holdings[1].AssetID)
		}
		assertDecimal(t, "total_value", res.Totals.TotalValue, "3700")
	})
}

func TestAggregate_EdgeCases(t *testing.T) {
	t.Run("malformed_numbers_are_skipped", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "abc", "100", 0),
			buy(1, "10", "", 0),
			buy(1, "-3", "100", 0),
			buy(1, "0", "100", 0),
			buy(1, "2", "NaN", 0),
			{AssetID: 1, Direction: "gift", Quantity: "1", UnitPrice: "1", OccurredAt: at(0)},
			buy(1, "1", "100", 1),
		}, testRegistry())

		if res.Diagnostics.SkippedTransactions != 6 {
			t.Errorf("expected 6 skipped, got %d", res.Diagnostics.SkippedTransactions)
		}
		if len(res.Holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(res.Holdings))
		}
		assertDecimal(t, "remaining", res.Holdings[0].RemainingQuantity, "1")
	})

	t.Run("unknown_asset_is_valued_at_zero", func(t *testing.T) {
		res := Aggregate([]Transaction{buy(99, "2", "50", 0)}, testRegistry())

		if len(res.Holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(res.Holdings))
		}
		h := res.Holdings[0]
		assertDecimal(t, "value", h.CurrentValue, "0")
		assertDecimal(t, "profit_loss", h.ProfitLoss, "-100")
		assertDecimal(t, "profit_loss_percent", h.ProfitLossPercent, "-100")
	})

	t.Run("nil_registry", func(t *testing.T) {
		res := Aggregate([]Transaction{buy(1, "2", "50", 0)}, nil)
		assertDecimal(t, "value", res.Holdings[0].CurrentValue, "0")
	})

	t.Run("unparseable_quote_counts_as_zero", func(t *testing.T) {
		reg := NewRegistry([]Asset{{ID: 1, Selling: "n/a"}})
		res := Aggregate([]Transaction{buy(1, "2", "50", 0)}, reg)
		assertDecimal(t, "value", res.Holdings[0].CurrentValue, "0")
	})

	t.Run("oversell_from_positive_position", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "3", "100", 0),
			sell(1, "5", "100", 1),
		}, testRegistry())

		if len(res.Holdings) != 0 {
			t.Fatalf("expected no holdings, got %d", len(res.Holdings))
		}
		if !reflect.DeepEqual(res.Diagnostics.AnomalousAssets, []uint{1}) {
			t.Errorf("expected anomalous assets [1], got %v", res.Diagnostics.AnomalousAssets)
		}
	})

	t.Run("buy_after_short_position", func(t *testing.T) {
		// The short leg keeps its cost untouched, so the later buy alone
		// carries the basis for the smaller remaining quantity.
		res := Aggregate([]Transaction{
			sell(1, "5", "100", 0),
			buy(1, "10", "100", 1),
		}, testRegistry())

		h := res.Holdings[0]
		assertDecimal(t, "remaining", h.RemainingQuantity, "5")
		assertDecimal(t, "cost", h.CostBasisTotal, "1000")
		assertDecimal(t, "average", h.AverageCost, "200")
	})

	t.Run("same_day_buy_is_applied_before_sell", func(t *testing.T) {
		res := Aggregate([]Transaction{
			sell(1, "4", "100", 0),
			buy(1, "10", "100", 0),
		}, testRegistry())

		assertDecimal(t, "remaining", res.Holdings[0].RemainingQuantity, "6")
		assertDecimal(t, "cost", res.Holdings[0].CostBasisTotal, "600")
	})

	t.Run("turkish_formatted_numbers", func(t *testing.T) {
		reg := NewRegistry([]Asset{{ID: 1, Selling: "2.500,00"}})
		res := Aggregate([]Transaction{buy(1, "1,5", "2.000,50", 0)}, reg)

		h := res.Holdings[0]
		assertDecimal(t, "cost", h.CostBasisTotal, "3000.75")
		assertDecimal(t, "value", h.CurrentValue, "3750")
	})

	t.Run("division_guards", func(t *testing.T) {
		res := Aggregate([]Transaction{
			buy(1, "1", "10", 0),
			sell(1, "1", "10", 1),
		}, testRegistry())

		assertDecimal(t, "total_percent", res.Totals.ProfitLossPercent, "0")
		if len(res.Holdings) != 0 {
			t.Errorf("expected closed position to be dropped, got %d holdings", len(res.Holdings))
		}
	})
}

func TestHoldingRounded(t *testing.T) {
	h := Holding{
		RemainingQuantity: dec("1.23456"),
		CostBasisTotal:    dec("10.005"),
		ProfitLossPercent: dec("66.6666666"),
		Locations:         []string{"Bank"},
	}
	r := h.Rounded()

	assertDecimal(t, "remaining", r.RemainingQuantity, "1.23456")
	assertDecimal(t, "cost", r.CostBasisTotal, "10.01")
	assertDecimal(t, "percent", r.ProfitLossPercent, "66.67")

	r.Locations[0] = "changed"
	if h.Locations[0] != "Bank" {
		t.Error("expected Rounded to copy locations")
	}
}
