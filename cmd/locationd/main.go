package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanasaryank/trio-admin-sub000/internal/adapter/geodict"
	httpadapter "github.com/sanasaryank/trio-admin-sub000/internal/adapter/http"
	kafkaadapter "github.com/sanasaryank/trio-admin-sub000/internal/adapter/kafka"
	"github.com/sanasaryank/trio-admin-sub000/internal/adapter/nominatim"
	"github.com/sanasaryank/trio-admin-sub000/internal/config"
	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
	"github.com/sanasaryank/trio-admin-sub000/internal/observability"
	"github.com/sanasaryank/trio-admin-sub000/internal/resolver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	dict, err := geodict.Load(cfg.DictionaryPath)
	if err != nil {
		logger.Error("failed to load geography dictionary", "path", cfg.DictionaryPath, "error", err)
		os.Exit(1)
	}
	metrics.DictionaryEntries.WithLabelValues("country").Set(float64(len(dict.Countries)))
	metrics.DictionaryEntries.WithLabelValues("city").Set(float64(len(dict.Cities)))
	metrics.DictionaryEntries.WithLabelValues("district").Set(float64(len(dict.Districts)))
	logger.Info("geography dictionary loaded",
		"countries", len(dict.Countries),
		"cities", len(dict.Cities),
		"districts", len(dict.Districts),
	)

	// One throttle per process: the external service rate-limits by origin.
	throttle := nominatim.NewThrottle(cfg.GeocoderMinInterval, nil)
	client := nominatim.NewClient(
		cfg.GeocoderBaseURL,
		cfg.GeocoderUserAgent,
		cfg.GeocoderLanguage,
		cfg.GeocoderTimeout,
		throttle,
		metrics,
		logger,
	)
	geocoder := nominatim.NewCachedGeocoder(client, cfg.GeocoderCacheSize, metrics)

	res := resolver.New(geocoder, dict, metrics, logger)

	var audit httpadapter.Auditor
	var auditor *kafkaadapter.Auditor
	if cfg.KafkaEnabled {
		auditor = kafkaadapter.NewAuditor(cfg, logger)
		audit = auditor
		logger.Info("resolution auditing enabled", "topic", cfg.KafkaAuditTopic)
	} else {
		logger.Info("resolution auditing disabled")
	}

	defaultCenter := domain.Coordinate{Lat: cfg.DefaultCenterLat, Lon: cfg.DefaultCenterLon}
	srv := httpadapter.NewServer(cfg.HTTPAddr, res, defaultCenter, audit, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if auditor != nil {
		if err := auditor.Close(); err != nil {
			logger.Error("kafka auditor close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
