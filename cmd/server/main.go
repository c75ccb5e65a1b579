package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/polar-risk-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/polar-risk-service/internal/adapter/kafka"
	"github.com/couchcryptid/polar-risk-service/internal/assessment"
	"github.com/couchcryptid/polar-risk-service/internal/config"
	"github.com/couchcryptid/polar-risk-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Publishing is feature-flagged via PUBLISH_ENABLED.
	var publisher assessment.Publisher
	var writer *kafkaadapter.Writer
	if cfg.PublishEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("assessment publishing enabled",
			"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic, "interval", cfg.PublishInterval)
	} else {
		logger.Info("assessment publishing disabled")
	}

	svc := assessment.New(assessment.SourceFromConfig(cfg), publisher, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Evaluate once at startup so a bad configuration surfaces before serving.
	a, err := svc.Evaluate(ctx)
	if err != nil {
		logger.Error("initial risk assessment failed", "error", err)
		os.Exit(1)
	}
	logger.Info("initial risk assessment",
		"date", a.DateString(),
		"risk_index", a.RiskIndex,
		"status", a.Status.String(),
	)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Publish on a schedule, never from read requests.
	publisherDone := make(chan struct{})
	go func() {
		defer close(publisherDone)
		if err := svc.Run(ctx, clockwork.NewRealClock(), cfg.PublishInterval); err != nil {
			logger.Error("assessment publisher error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	<-publisherDone
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
