// Package cli implements the offline portfolio commands. They run the
// aggregation engine over JSON files without touching a database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"birikim/internal/portfolio"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands returns every command, writing results to out.
func Commands(out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&holdingsCmd{out: out},
		&convertCmd{out: out},
	}
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// loadAssets reads a quotes file: a JSON array of {id, code, name, buying, selling}.
func loadAssets(path string) ([]portfolio.Asset, error) {
	var assets []portfolio.Asset
	if err := readJSON(path, &assets); err != nil {
		return nil, err
	}
	for _, a := range assets {
		if a.ID == portfolio.BaseAssetID {
			return nil, fmt.Errorf("asset %q: id 0 is reserved for the base currency", a.Code)
		}
	}
	return assets, nil
}

// resolveAsset maps a currency code to its asset id. The base code maps to
// portfolio.BaseAssetID.
func resolveAsset(code, base string, assets []portfolio.Asset) (uint, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == base {
		return portfolio.BaseAssetID, nil
	}
	for _, a := range assets {
		if strings.EqualFold(a.Code, code) {
			return a.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown currency %q", code)
}

// formatMoney renders d in the given ISO currency using go-money's
// grouping and grapheme rules.
func formatMoney(d decimal.Decimal, code string) string {
	cur := *money.New(0, code).Currency()
	minor := d.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
