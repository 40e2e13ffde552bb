package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/floodhub/wardwatch/internal/events"
	"github.com/floodhub/wardwatch/internal/insight"
	"github.com/floodhub/wardwatch/internal/scoring"
	"github.com/floodhub/wardwatch/internal/selection"
	"github.com/floodhub/wardwatch/internal/ward"
	"github.com/floodhub/wardwatch/internal/weather"
)

// Deps bundles everything the router serves.
type Deps struct {
	Features   *ward.FeatureStore
	Source     ward.DistrictSource
	Reports    *ward.ReportStore
	Hazards    []ward.HazardZone
	Engine     *scoring.Engine
	Controller *selection.Controller
	Registry   *selection.Registry
	Viewport   *selection.ViewportState
	Weather    weather.Client
	Insight    insight.Client
	Events     events.Client
	Metrics    *Collector
	Logger     *slog.Logger
	RateLimit  int
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(d.Logger))
	r.Use(Instrument(d.Metrics))
	if d.RateLimit > 0 {
		r.Use(RateLimitMiddleware(d.RateLimit))
	}

	districts := NewDistrictsHandler(d.Features, d.Source, d.Engine, d.Registry, d.Events, d.Metrics, d.Logger)
	sel := NewSelectionHandler(d.Controller, d.Viewport, d.Metrics)
	reports := NewReportsHandler(d.Features, d.Reports, d.Hazards, d.Events)
	wh := NewWeatherHandler(d.Weather, d.Metrics, d.Logger)
	insights := NewInsightsHandler(d.Features, d.Hazards, d.Weather, d.Insight, d.Metrics, d.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/districts", districts.List)
		r.Get("/districts/{id}", districts.Get)
		r.Get("/districts/{id}/style", districts.Style)
		r.Get("/aggregates", districts.Aggregates)
		r.Get("/risk/distribution", districts.Distribution)
		r.Get("/risk/classify", districts.Classify)
		r.Post("/datasets/reload", districts.Reload)

		r.Get("/selection", sel.Get)
		r.Post("/selection/select", sel.Select)
		r.Post("/selection/click", sel.Click)
		r.Post("/selection/pointer", sel.Pointer)
		r.Get("/viewport", sel.Viewport)

		r.Get("/hazards", reports.Hazards)
		r.Get("/reports", reports.List)
		r.Post("/reports", reports.Create)

		r.Get("/weather", wh.Get)
		r.Post("/insights", insights.Create)
		r.Post("/rain-risk", insights.RainRisk)
	})

	return r
}

func NewMetricsRouter(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
