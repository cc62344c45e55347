package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carebridge/medtour-backend/internal/adapters/cache"
	"github.com/carebridge/medtour-backend/internal/adapters/contentstore"
	"github.com/carebridge/medtour-backend/internal/api/handlers"
	"github.com/carebridge/medtour-backend/internal/api/middleware"
	"github.com/carebridge/medtour-backend/internal/api/routes"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/infrastructure/clients/postgres"
	"github.com/carebridge/medtour-backend/internal/infrastructure/clients/redis"
	"github.com/carebridge/medtour-backend/internal/infrastructure/observability"
	"github.com/carebridge/medtour-backend/internal/query/services"
	"github.com/carebridge/medtour-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("medtour-api", cfg.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var metrics *observability.Metrics
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()

			metrics, err = observability.InitMetrics()
			if err != nil {
				logger.Warn().Err(err).Msg("failed to initialize metrics")
			} else {
				logger.Info().Msg("OpenTelemetry initialized")
			}
		}
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The API works without it; caching degrades to
	// an in-process cache.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, using in-memory cache")
		cacheProvider = cache.NewMemoryAdapter()
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	// Content store with read-through caching
	store := contentstore.NewCachedAdapter(
		contentstore.NewPostgresAdapter(pgClient),
		cacheProvider,
		time.Duration(cfg.Cache.ResolveTTL)*time.Second,
		time.Duration(cfg.Cache.RootQueryTTL)*time.Second,
	)

	// Initialize services and handlers
	directoryService := services.NewDirectoryQueryService(store).WithMetrics(metrics)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	healthDeps := map[string]handlers.Pinger{"postgres": pgClient}
	if redisClient != nil {
		healthDeps["redis"] = redisClient
	}
	healthHandler := handlers.NewHealthHandler(healthDeps)

	cacheMiddleware := middleware.NewCacheMiddleware(
		cacheProvider,
		time.Duration(cfg.Cache.ResponseTTL)*time.Second,
		metrics,
	)

	// Set up router
	router := routes.NewRouter(directoryHandler, healthHandler, cacheMiddleware, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
