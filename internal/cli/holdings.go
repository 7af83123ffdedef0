package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"birikim/internal/portfolio"

	"github.com/google/subcommands"
)

type holdingsCmd struct {
	out          io.Writer
	transactions string
	quotes       string
	base         string
	asJSON       bool
}

func (*holdingsCmd) Name() string { return "holdings" }
func (*holdingsCmd) Synopsis() string {
	return "aggregate transactions into holdings valued at the given quotes"
}
func (*holdingsCmd) Usage() string {
	return `portfolio holdings -transactions <file> -quotes <file> [-base TRY] [-json]

  Replays the buy and sell transactions with weighted-average cost and values
  what remains at each asset's selling quote.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactions, "transactions", "", "JSON file with an array of transactions.")
	f.StringVar(&c.quotes, "quotes", "", "JSON file with an array of assets and their quotes.")
	f.StringVar(&c.base, "base", "TRY", "Base currency the prices are expressed in.")
	f.BoolVar(&c.asJSON, "json", false, "Print the raw result as JSON.")
}

func (c *holdingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.transactions == "" || c.quotes == "" {
		fmt.Fprintln(os.Stderr, "both -transactions and -quotes are required")
		return subcommands.ExitUsageError
	}

	var txs []portfolio.Transaction
	if err := readJSON(c.transactions, &txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	assets, err := loadAssets(c.quotes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	registry := portfolio.NewRegistry(assets)
	result := portfolio.Aggregate(txs, registry)

	if c.asJSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	c.render(result, registry)
	return subcommands.ExitSuccess
}

func (c *holdingsCmd) render(result portfolio.Result, registry *portfolio.Registry) {
	base := strings.ToUpper(c.base)
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "CODE\tQUANTITY\tAVG COST\tCOST\tVALUE\tP/L\tP/L %\t")
	for _, h := range result.Holdings {
		h = h.Rounded()
		code := fmt.Sprintf("#%d", h.AssetID)
		if a, ok := registry.Lookup(h.AssetID); ok && a.Code != "" {
			code = a.Code
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			code,
			h.RemainingQuantity.String(),
			formatMoney(h.AverageCost, base),
			formatMoney(h.CostBasisTotal, base),
			formatMoney(h.CurrentValue, base),
			formatMoney(h.ProfitLoss, base),
			h.ProfitLossPercent.StringFixed(2))
	}
	t := result.Totals.Rounded()
	fmt.Fprintf(w, "TOTAL\t\t\t%s\t%s\t%s\t%s\t\n",
		formatMoney(t.TotalCost, base),
		formatMoney(t.TotalValue, base),
		formatMoney(t.ProfitLoss, base),
		t.ProfitLossPercent.StringFixed(2))
	w.Flush()

	d := result.Diagnostics
	if d.SkippedTransactions > 0 {
		fmt.Fprintf(c.out, "skipped %d malformed transaction(s)\n", d.SkippedTransactions)
	}
	if len(d.AnomalousAssets) > 0 {
		fmt.Fprintf(c.out, "oversold assets: %v\n", d.AnomalousAssets)
	}
}
