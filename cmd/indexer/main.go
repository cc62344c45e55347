package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/carebridge/medtour-backend/internal/adapters/contentstore"
	"github.com/carebridge/medtour-backend/internal/adapters/search"
	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/infrastructure/clients/postgres"
	"github.com/carebridge/medtour-backend/internal/infrastructure/clients/typesense"
	"github.com/carebridge/medtour-backend/internal/infrastructure/observability"
	"github.com/carebridge/medtour-backend/internal/resolver"
	"github.com/carebridge/medtour-backend/pkg/config"
	"github.com/carebridge/medtour-backend/pkg/retry"
)

const indexPageSize = 100

// indexRetryConfig bounds per-branch upsert retries so one flaky document
// cannot stall a whole reindex run.
func indexRetryConfig() retry.Config {
	return retry.Config{
		MaxAttempts:     3,
		InitialDelay:    200 * time.Millisecond,
		MaxDelay:        2 * time.Second,
		BackoffFactor:   2.0,
		MaxTotalTimeout: 10 * time.Second,
	}
}

func main() {
	var intervalFlag string
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	observability.InitLogger("medtour-indexer", os.Getenv("APP_ENV"))
	logger := observability.GetLogger()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			logger.Fatal().Str("interval", intervalValue).Err(err).Msg("invalid interval")
		}
		if interval <= 0 {
			logger.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx); err != nil {
			logger.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		logger.Info().Dur("interval", interval).Msg("reindex complete, waiting for next run")

		select {
		case <-ctx.Done():
			logger.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context) error {
	logger := observability.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	store := contentstore.NewPostgresAdapter(pgClient)
	enricher := resolver.NewEnricher(store)
	adapter := search.NewTypesenseAdapter(tsClient)

	if err := adapter.InitSchema(ctx); err != nil {
		return err
	}

	indexed := 0
	for offset := 0; ; offset += indexPageSize {
		recs, _, err := store.Query(ctx, providers.ContentQuery{
			Collection: entities.CollectionBranches,
			Limit:      indexPageSize,
			Offset:     offset,
		})
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			break
		}

		for _, branch := range enricher.EnrichBranches(ctx, recs) {
			err := retry.Do(ctx, indexRetryConfig(), func() error {
				return adapter.IndexBranch(ctx, branch)
			})
			if err != nil {
				logger.Warn().Str("branch", branch.ID).Err(err).Msg("failed to index branch")
				continue
			}
			indexed++
		}

		if len(recs) < indexPageSize {
			break
		}
	}

	logger.Info().Int("branches", indexed).Msg("indexing complete")
	return nil
}
