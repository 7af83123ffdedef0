package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"birikim/internal/logger"
	"birikim/internal/quoteimport"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()
	log := logger.Get()

	cfg, err := quoteimport.LoadConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	sources, err := quoteimport.LoadMapping(cfg.MappingPath)
	if err != nil {
		log.Fatalf("loading quote mapping: %v", err)
	}

	client := quoteimport.NewPipelineClient(cfg.APIURL, cfg.PipelineAPIKey, &http.Client{Timeout: cfg.RequestTimeout})

	readers := make([]quoteimport.Reader, len(sources))
	for i, src := range sources {
		readers[i] = quoteimport.NewFileReader(src)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := quoteimport.New(client, readers, cfg.ComputeSnapshots, log).Run(ctx)
	if err != nil {
		log.Errorw("quote import failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}

	log.Infow("quote import completed",
		"quotes_read", result.QuotesRead,
		"quotes_upserted", result.QuotesUpserted,
		"snapshots_recorded", result.SnapshotsRecorded,
		"errors", len(result.Errors),
		"duration", result.Duration.String(),
	)

	for _, extractErr := range result.Errors {
		log.Warnw("quote not imported",
			"source", extractErr.Source,
			"code", extractErr.Code,
			"error", extractErr.Err.Error(),
		)
	}

	if len(result.Errors) > 0 {
		logger.Sync()
		os.Exit(2)
	}
}
