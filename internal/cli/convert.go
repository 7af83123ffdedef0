package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"birikim/internal/portfolio"

	"github.com/google/subcommands"
)

type convertCmd struct {
	out    io.Writer
	quotes string
	from   string
	to     string
	amount string
	base   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between two assets" }
func (*convertCmd) Usage() string {
	return `portfolio convert -quotes <file> -from <code> -to <code> -amount <x> [-base TRY]

  Values the source at its buying quote and the target at its selling quote.
  The base currency is always quoted at 1.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quotes, "quotes", "", "JSON file with an array of assets and their quotes.")
	f.StringVar(&c.from, "from", "", "Source currency code.")
	f.StringVar(&c.to, "to", "", "Target currency code.")
	f.StringVar(&c.amount, "amount", "", "Amount of the source currency (1.234,56 and 1234.56 are both accepted).")
	f.StringVar(&c.base, "base", "TRY", "Base currency the quotes are expressed in.")
}

func (c *convertCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.quotes == "" || c.from == "" || c.to == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "-quotes, -from, -to and -amount are required")
		return subcommands.ExitUsageError
	}

	amount, ok := portfolio.ParseAmount(c.amount)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	assets, err := loadAssets(c.quotes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	base := strings.ToUpper(c.base)
	fromID, err := resolveAsset(c.from, base, assets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	toID, err := resolveAsset(c.to, base, assets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := portfolio.Convert(portfolio.NewRegistry(assets), fromID, toID, amount)
	switch {
	case errors.Is(err, portfolio.ErrPriceUnavailable):
		fmt.Fprintln(os.Stderr, "no usable quote for one of the currencies")
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(c.out, "%s %s = %s %s\n",
		amount.String(), strings.ToUpper(c.from), result.Round(4).String(), strings.ToUpper(c.to))
	return subcommands.ExitSuccess
}
