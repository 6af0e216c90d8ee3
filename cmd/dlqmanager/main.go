package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"example.com/healthrecords/internal/config"
	"example.com/healthrecords/internal/observability"
	"example.com/healthrecords/internal/outbox"
)

const dlqBatchSize = 50

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := observability.NewLogger(cfg.LogLevel, "health-records-dlqmanager")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	manager := outbox.NewDLQManager(pool, cfg.DLQMaxRetries, cfg.DLQBaseDelay)

	metricsSrv := &http.Server{Addr: cfg.MetricsAddress, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info().Str("address", cfg.MetricsAddress).Msg("dlq manager metrics listening")
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()

	ticker := time.NewTicker(cfg.DLQPollInterval)
	defer ticker.Stop()

	logger.Info().
		Dur("interval", cfg.DLQPollInterval).
		Int("max_retries", cfg.DLQMaxRetries).
		Msg("dlq manager started")

loop:
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("dlq manager received shutdown signal")
			break loop
		case <-ticker.C:
			processed, err := manager.RunOnce(ctx, dlqBatchSize)
			if err != nil {
				logger.Error().Err(err).Msg("dlq manager error")
			} else if processed > 0 {
				logger.Info().Int("processed", processed).Msg("dlq manager processed entries")
			}
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("metrics server shutdown error")
	}
}
