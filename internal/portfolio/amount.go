package portfolio

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a raw decimal value as delivered by a transaction or quote source.
// It may hold a plain ("1234.56") or Turkish-formatted ("1.234,56") number and
// is only interpreted by ParseAmount.
type Amount string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// Decimal parses the amount. The second return value is false when the
// amount is not a finite decimal number.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	return ParseAmount(string(a))
}

// ParseAmount parses a decimal string that may use either '.' or ',' as the
// decimal separator. When both appear, the right-most one is the decimal
// separator and the other is treated as digit grouping.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	s = strings.TrimPrefix(s, "+")

	// Only digits, one '.', and a leading minus may remain.
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
		case r == '-' && i == 0:
		default:
			return decimal.Zero, false
		}
	}
	if strings.Count(s, ".") > 1 {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parsePositive parses s and reports whether it is strictly positive.
func parsePositive(a Amount) (decimal.Decimal, bool) {
	d, ok := a.Decimal()
	if !ok || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
