// Package quoteimport reads market quotes out of saved JSON documents and
// pushes them to the birikim pipeline API.
package quoteimport

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// QuoteClient defines the pipeline API operations needed by the importer.
type QuoteClient interface {
	UpsertQuotes(ctx context.Context, quotes []QuoteEntry) (int, error)
	ComputeSnapshots(ctx context.Context) (int, error)
}

// RunResult contains the outcome of an import.
type RunResult struct {
	QuotesRead        int
	QuotesUpserted    int
	SnapshotsRecorded int
	Errors            []ExtractError
	Duration          time.Duration
}

// Importer collects quotes from readers and records them via the pipeline API.
type Importer struct {
	client           QuoteClient
	readers          []Reader
	computeSnapshots bool
	log              *zap.SugaredLogger
}

// New creates an Importer.
func New(client QuoteClient, readers []Reader, computeSnapshots bool, log *zap.SugaredLogger) *Importer {
	return &Importer{
		client:           client,
		readers:          readers,
		computeSnapshots: computeSnapshots,
		log:              log,
	}
}

// Run reads every document, pushes the quotes, then records snapshots.
// When two readers report the same code, the earlier reader wins.
func (im *Importer) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{}

	seen := make(map[string]bool)
	var entries []QuoteEntry
	for _, r := range im.readers {
		im.log.Infow("reading quotes", "source", r.Name())
		quotes, errs := r.ReadQuotes()
		result.Errors = append(result.Errors, errs...)
		for _, q := range quotes {
			if seen[q.Code] {
				im.log.Debugw("duplicate quote ignored", "code", q.Code, "source", r.Name())
				continue
			}
			seen[q.Code] = true
			entries = append(entries, QuoteEntry{
				Code:     q.Code,
				Name:     q.Name,
				Kind:     q.Kind,
				Buying:   q.Buying,
				Selling:  q.Selling,
				QuotedAt: q.QuotedAt.Format(time.RFC3339),
			})
		}
	}
	result.QuotesRead = len(entries)

	if len(entries) == 0 {
		im.log.Info("no quotes read")
		result.Duration = time.Since(start)
		return result, nil
	}

	upserted, err := im.client.UpsertQuotes(ctx, entries)
	if err != nil {
		return nil, err
	}
	result.QuotesUpserted = upserted

	if im.computeSnapshots {
		snapshots, err := im.client.ComputeSnapshots(ctx)
		if err != nil {
			im.log.Warnw("failed to compute snapshots", "error", err)
		} else {
			result.SnapshotsRecorded = snapshots
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}
