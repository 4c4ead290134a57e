package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/couchcryptid/plant-survivability-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/plant-survivability-service/internal/adapter/kafka"
	"github.com/couchcryptid/plant-survivability-service/internal/adapter/mapbox"
	mqttadapter "github.com/couchcryptid/plant-survivability-service/internal/adapter/mqtt"
	"github.com/couchcryptid/plant-survivability-service/internal/app"
	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
	"github.com/couchcryptid/plant-survivability-service/internal/pipeline"
	"golang.org/x/crypto/acme/autocert"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tables, err := app.LoadTables(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to load tables", "error", err)
		os.Exit(1)
	}
	readiness := app.Readiness{}
	if tables.Store != nil {
		readiness = append(readiness, tables.Store)
	}

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	// Snapshot sink (SNAPSHOT_SINK=none|kafka|mqtt).
	var (
		publisher *pipeline.Publisher
		closeSink func() error
	)
	switch cfg.SnapshotSink {
	case config.SinkKafka:
		writer := kafkaadapter.NewWriter(cfg, logger)
		publisher = pipeline.NewPublisher(writer, logger, metrics, cfg.SnapshotQueueSize)
		closeSink = writer.Close
		logger.Info("publishing snapshots to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSnapshotTopic)
	case config.SinkMQTT:
		mq := mqttadapter.NewPublisher(cfg, logger)
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := mq.Connect(connectCtx); err != nil {
			logger.Warn("mqtt broker not reachable yet, retrying in background", "error", err)
		}
		cancel()
		publisher = pipeline.NewPublisher(mq, logger, metrics, cfg.SnapshotQueueSize)
		closeSink = mq.Close
		readiness = append(readiness, mq)
		logger.Info("publishing snapshots to mqtt", "broker", cfg.MQTTBroker, "topic", cfg.MQTTTopic)
	default:
		logger.Info("snapshot publishing disabled")
	}

	svc := app.NewService(cfg, tables, geocoder, publisher, logger, metrics)
	readiness = append(readiness, svc)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, readiness, logger)

	// Start HTTP server, with ACME certificates when TLS_DOMAIN is set.
	var challenge *http.Server
	if cfg.TLSDomain != "" {
		certManager := autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.TLSDomain),
			Cache:      autocert.DirCache(cfg.TLSCertDir),
		}
		challenge = &http.Server{
			Addr:              ":80",
			Handler:           certManager.HTTPHandler(nil),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := challenge.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("acme challenge server error", "error", err)
			}
		}()
		go func() {
			err := srv.StartTLS(&tls.Config{
				GetCertificate: certManager.GetCertificate,
				MinVersion:     tls.VersionTLS12,
			})
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("https server error", "error", err)
			}
		}()
	} else {
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	// Start snapshot publisher.
	if publisher != nil {
		go func() {
			if err := publisher.Run(ctx); err != nil {
				logger.Error("snapshot publisher error", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if challenge != nil {
		if err := challenge.Shutdown(shutdownCtx); err != nil {
			logger.Error("acme challenge server shutdown error", "error", err)
		}
	}
	if closeSink != nil {
		if err := closeSink(); err != nil {
			logger.Error("snapshot sink close error", "error", err)
		}
	}
	if err := tables.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("shutdown complete")
}
