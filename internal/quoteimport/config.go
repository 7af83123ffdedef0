package quoteimport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the importer's runtime settings.
type Config struct {
	APIURL           string
	PipelineAPIKey   string
	RequestTimeout   time.Duration
	ComputeSnapshots bool
	MappingPath      string
}

// Source is one saved market-data document and the quotes read from it.
type Source struct {
	Name string `json:"name"`
	File string `json:"file"`
	// QuotedAt optionally points at the document's own timestamp. Without it
	// the file's modification time is used.
	QuotedAt string      `json:"quoted_at"`
	Quotes   []QuoteRule `json:"quotes"`
}

// QuoteRule maps JSONPath expressions in a source document to one currency.
type QuoteRule struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Buying  string `json:"buying"`
	Selling string `json:"selling"`
}

// LoadConfig reads importer configuration from the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:         os.Getenv("PIPELINE_API_URL"),
		PipelineAPIKey: os.Getenv("PIPELINE_API_KEY"),
		MappingPath:    os.Getenv("QUOTE_MAPPING"),
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("PIPELINE_API_URL is required")
	}
	if cfg.PipelineAPIKey == "" {
		return nil, fmt.Errorf("PIPELINE_API_KEY is required")
	}
	if cfg.MappingPath == "" {
		cfg.MappingPath = "quote-mapping.json"
	}

	timeout, err := parseTimeout(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	snapshots, err := parseBool(os.Getenv("COMPUTE_SNAPSHOTS"), true)
	if err != nil {
		return nil, fmt.Errorf("invalid COMPUTE_SNAPSHOTS value: %w", err)
	}
	cfg.ComputeSnapshots = snapshots

	return cfg, nil
}

// LoadMapping reads and validates the source definitions. Relative document
// paths are resolved against the mapping file's directory.
func LoadMapping(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping: %w", err)
	}

	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("decoding mapping: %w", err)
	}

	dir := filepath.Dir(path)
	for i := range sources {
		src := &sources[i]
		if src.File == "" {
			return nil, fmt.Errorf("source %d: file is required", i)
		}
		if src.Name == "" {
			src.Name = src.File
		}
		if !filepath.IsAbs(src.File) {
			src.File = filepath.Join(dir, src.File)
		}
		for j := range src.Quotes {
			rule := &src.Quotes[j]
			rule.Code = strings.ToUpper(strings.TrimSpace(rule.Code))
			if rule.Code == "" || rule.Buying == "" || rule.Selling == "" {
				return nil, fmt.Errorf("source %q quote %d: code, buying and selling are required", src.Name, j)
			}
		}
	}
	return sources, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}
