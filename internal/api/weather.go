package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/floodhub/wardwatch/internal/insight"
	"github.com/floodhub/wardwatch/internal/scoring"
	"github.com/floodhub/wardwatch/internal/ward"
	"github.com/floodhub/wardwatch/internal/weather"
)

type WeatherHandler struct {
	weather weather.Client
	metrics *Collector
	logger  *slog.Logger
}

func NewWeatherHandler(wc weather.Client, metrics *Collector, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{weather: wc, metrics: metrics, logger: logger}
}

// Get handles GET /api/v1/weather?q= — proxies the provider and attaches the
// deterministic waterlog assessment when the snapshot carries enough data.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required (city or lat,lon)"})
		return
	}

	snap, err := h.weather.Forecast(r.Context(), q)
	h.metrics.observeProvider("weather", err)
	if err != nil {
		h.logger.Warn("weather fetch failed", "query", q, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "weather unavailable"})
		return
	}

	resp := map[string]interface{}{"weather": snap}
	if snap.HasData() {
		resp["waterlog"] = scoring.AssessWaterlog(snap.WaterlogInputs())
	}
	writeJSON(w, http.StatusOK, resp)
}

type InsightsHandler struct {
	features *ward.FeatureStore
	hazards  []ward.HazardZone
	weather  weather.Client
	insight  insight.Client
	metrics  *Collector
	logger   *slog.Logger
}

func NewInsightsHandler(features *ward.FeatureStore, hazards []ward.HazardZone,
	wc weather.Client, ic insight.Client, metrics *Collector, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{
		features: features,
		hazards:  hazards,
		weather:  wc,
		insight:  ic,
		metrics:  metrics,
		logger:   logger,
	}
}

type insightsRequest struct {
	WardID string `json:"ward_id"`
}

// Create handles POST /api/v1/insights — best-effort NL mitigation insights
// for one ward. Any model failure degrades to "unavailable" without touching
// the deterministic outputs.
func (h *InsightsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.WardID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ward_id is required"})
		return
	}
	rec, ok := h.features.Get(req.WardID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "district not found"})
		return
	}

	set, err := h.insight.WardInsights(r.Context(), rec, h.hazards)
	h.metrics.observeProvider("insight", err)
	if err != nil {
		h.logger.Warn("ward insights failed", "ward_id", req.WardID, "error", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"available": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": true,
		"insights":  set.Insights,
	})
}

type rainRiskRequest struct {
	Query string `json:"q"`
}

// RainRisk handles POST /api/v1/rain-risk — fetches a fresh snapshot and
// asks the model for its free-form classification.
func (h *InsightsHandler) RainRisk(w http.ResponseWriter, r *http.Request) {
	var req rainRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}

	snap, err := h.weather.Forecast(r.Context(), req.Query)
	h.metrics.observeProvider("weather", err)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "weather unavailable"})
		return
	}

	rr, err := h.insight.RainRisk(r.Context(), snap)
	h.metrics.observeProvider("insight", err)
	if err != nil {
		h.logger.Warn("rain risk classification failed", "query", req.Query, "error", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"available": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": true,
		"risk":      rr,
	})
}
