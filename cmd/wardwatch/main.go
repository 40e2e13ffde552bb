package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/floodhub/wardwatch/internal/api"
	"github.com/floodhub/wardwatch/internal/config"
	"github.com/floodhub/wardwatch/internal/events"
	"github.com/floodhub/wardwatch/internal/insight"
	"github.com/floodhub/wardwatch/internal/scoring"
	"github.com/floodhub/wardwatch/internal/selection"
	"github.com/floodhub/wardwatch/internal/store"
	"github.com/floodhub/wardwatch/internal/ward"
	"github.com/floodhub/wardwatch/internal/weather"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// District source
	var source ward.DistrictSource
	switch cfg.Dataset.Source {
	case "postgres":
		pg, err := store.NewPostgresSource(ctx, cfg.Dataset.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		source = pg
		logger.Info("district source: postgres")
	default:
		source = ward.FileSource{Path: cfg.Dataset.WardsPath}
		logger.Info("district source: file", "path", cfg.Dataset.WardsPath)
	}

	// Hazard points are optional; the dashboard works without them.
	hazards, err := ward.LoadHazardZones(cfg.Dataset.HazardsPath)
	if err != nil {
		logger.Warn("hazard dataset unavailable", "error", err)
	}

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
		}
	}

	features := ward.NewFeatureStore()
	reports := ward.NewReportStore()
	engine := scoring.NewEngine()
	registry := selection.NewRegistry()
	viewport := selection.NewViewportState()

	onSelected := func(rec ward.DistrictRecord) {
		logger.Info("ward selected", "district_id", rec.ID, "name", rec.Name, "composite_risk", rec.CompositeRisk)
		if eventsClient != nil {
			_ = eventsClient.Publish(events.SubjectWardSelected(rec.ID), events.WardSelectedEvent{
				WardID:        rec.ID,
				WardName:      rec.Name,
				CompositeRisk: rec.CompositeRisk,
				Timestamp:     time.Now().UTC(),
			})
		}
	}
	controller := selection.NewController(registry, viewport, onSelected, logger)

	// Derived views and the layer registry follow every dataset replace.
	features.OnReplace(func(records []ward.DistrictRecord) {
		engine.Recompute(records)
	})
	features.OnReplace(func(records []ward.DistrictRecord) {
		registry.Reset()
		for _, rec := range records {
			registry.Register(selection.Entry{
				District: rec,
				Handle:   selection.NewStyleState(selection.BaselineStyle(scoring.ColorFor(rec.CompositeRisk))),
			})
		}
	})

	districts, err := source.Load(ctx)
	if err != nil {
		logger.Error("failed to load district dataset", "error", err)
		os.Exit(1)
	}
	features.Replace(districts)
	logger.Info("district dataset loaded", "districts", len(districts), "hazards", len(hazards),
		"preparedness_index", engine.Aggregates().Index)

	weatherClient := weather.NewHTTPClient(cfg.Weather.URL, cfg.Weather.Key, cfg.Weather.ForecastDays)
	insightClient := insight.NewHTTPClient(cfg.Insight.URL, cfg.Insight.Key, cfg.Insight.Model)
	metrics := api.NewCollector(prometheus.DefaultRegisterer)

	router := api.NewRouter(api.Deps{
		Features:   features,
		Source:     source,
		Reports:    reports,
		Hazards:    hazards,
		Engine:     engine,
		Controller: controller,
		Registry:   registry,
		Viewport:   viewport,
		Weather:    weatherClient,
		Insight:    insightClient,
		Events:     eventsClient,
		Metrics:    metrics,
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
	})
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(prometheus.DefaultGatherer),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
