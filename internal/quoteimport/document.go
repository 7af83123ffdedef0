package quoteimport

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"birikim/internal/portfolio"
)

// Quote is a price pair read from a market-data document.
type Quote struct {
	Code     string
	Name     string
	Kind     string
	Buying   string
	Selling  string
	QuotedAt time.Time
}

// ExtractError is a quote that could not be read from a document.
type ExtractError struct {
	Source string
	Code   string
	Err    error
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: failed to read quote %s: %v", e.Source, e.Code, e.Err)
}

// Reader extracts quotes from one document.
type Reader interface {
	Name() string
	// ReadQuotes returns every quote it could read along with per-code
	// failures.
	ReadQuotes() ([]Quote, []ExtractError)
}

// FileReader reads a JSON document from disk and evaluates the source's
// JSONPath rules against it.
type FileReader struct {
	source Source
}

// NewFileReader creates a reader for a configured source.
func NewFileReader(source Source) *FileReader {
	return &FileReader{source: source}
}

// Name returns the source name.
func (r *FileReader) Name() string { return r.source.Name }

// ReadQuotes loads the document once and evaluates every rule against it.
func (r *FileReader) ReadQuotes() ([]Quote, []ExtractError) {
	doc, modTime, err := readDocument(r.source.File)
	if err == nil {
		modTime, err = r.quotedAt(doc, modTime)
	}
	if err != nil {
		errs := make([]ExtractError, len(r.source.Quotes))
		for i, rule := range r.source.Quotes {
			errs[i] = ExtractError{Source: r.source.Name, Code: rule.Code, Err: err}
		}
		return nil, errs
	}

	var quotes []Quote
	var errs []ExtractError
	for _, rule := range r.source.Quotes {
		buying, err := extractPrice(rule.Buying, doc)
		if err != nil {
			errs = append(errs, ExtractError{Source: r.source.Name, Code: rule.Code, Err: fmt.Errorf("buying: %w", err)})
			continue
		}
		selling, err := extractPrice(rule.Selling, doc)
		if err != nil {
			errs = append(errs, ExtractError{Source: r.source.Name, Code: rule.Code, Err: fmt.Errorf("selling: %w", err)})
			continue
		}
		quotes = append(quotes, Quote{
			Code:     rule.Code,
			Name:     rule.Name,
			Kind:     rule.Kind,
			Buying:   buying,
			Selling:  selling,
			QuotedAt: modTime,
		})
	}
	return quotes, errs
}

// quotedAt resolves the document timestamp, defaulting to fallback.
func (r *FileReader) quotedAt(doc any, fallback time.Time) (time.Time, error) {
	if r.source.QuotedAt == "" {
		return fallback, nil
	}
	val, err := jsonpath.Get(r.source.QuotedAt, doc)
	if err != nil {
		return time.Time{}, fmt.Errorf("evaluating %q: %w", r.source.QuotedAt, err)
	}
	s, ok := val.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%q is not a timestamp: %v", r.source.QuotedAt, val)
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: unrecognized timestamp %q", r.source.QuotedAt, s)
}

func readDocument(path string) (any, time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, time.Time{}, err
	}

	var doc any
	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, info.ModTime().UTC(), nil
}

// extractPrice evaluates path against doc and returns the price verbatim as a
// decimal string. Documents carry either numbers or locale-formatted strings.
func extractPrice(path string, doc any) (string, error) {
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath may wrap a single match in a list.
	if list, ok := val.([]any); ok {
		if len(list) == 0 {
			return "", fmt.Errorf("no match for %q", path)
		}
		val = list[0]
	}

	var raw string
	switch v := val.(type) {
	case string:
		raw = v
	case json.Number:
		raw = v.String()
	case float64:
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "", fmt.Errorf("%q is not a price: %v", path, val)
	}

	d, ok := portfolio.ParseAmount(raw)
	if !ok || d.IsNegative() {
		return "", fmt.Errorf("%q: invalid price %q", path, raw)
	}
	return raw, nil
}
