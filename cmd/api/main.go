package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"example.com/healthrecords/internal/api"
	"example.com/healthrecords/internal/auth"
	"example.com/healthrecords/internal/cache"
	"example.com/healthrecords/internal/config"
	"example.com/healthrecords/internal/domain"
	"example.com/healthrecords/internal/observability"
	"example.com/healthrecords/internal/outbox"
	persistence "example.com/healthrecords/internal/persistence/postgres"
	httptransport "example.com/healthrecords/internal/transport/http"
	"example.com/healthrecords/internal/wire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := observability.NewLogger(cfg.LogLevel, "health-records-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := persistence.Migrate(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	compressor, err := wire.NewCompressor()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build route compressor")
	}

	repo := persistence.NewRepository(pool, compressor)
	producer := outbox.NewKafkaProducer(cfg.KafkaBrokers)
	defer producer.Close()

	registry := outbox.NewSchemaRegistryClient(cfg.SchemaRegistryURL)
	dispatcher := outbox.NewDispatcher(pool, producer, registry, cfg.OutboxPollInterval, cfg.OutboxBatchSize,
		outbox.WithLogger(logger.With().Str("component", "outbox").Logger()))

	go dispatcher.Start(ctx)

	service := domain.NewService(repo)
	handler := api.NewHandler(service, cache.NewViews(cfg.CacheSizeMB, cfg.CacheTTL))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})
	requestLogger := httptransport.RequestLogger(logger)
	cors := httptransport.CORS(cfg.CORSOrigin)

	server := httptransport.NewServer(httptransport.DefaultServerConfig(cfg.HTTPAddress),
		requestLogger(cors(authMiddleware.Wrap(mux))))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress).Msg("health-records api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	dispatcher.Wait()
}
