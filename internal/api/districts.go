package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/floodhub/wardwatch/internal/events"
	"github.com/floodhub/wardwatch/internal/scoring"
	"github.com/floodhub/wardwatch/internal/selection"
	"github.com/floodhub/wardwatch/internal/ward"
)

type DistrictsHandler struct {
	features *ward.FeatureStore
	source   ward.DistrictSource
	engine   *scoring.Engine
	registry *selection.Registry
	events   events.Client
	metrics  *Collector
	logger   *slog.Logger
}

func NewDistrictsHandler(features *ward.FeatureStore, source ward.DistrictSource, engine *scoring.Engine,
	registry *selection.Registry, ev events.Client, metrics *Collector, logger *slog.Logger) *DistrictsHandler {
	return &DistrictsHandler{
		features: features,
		source:   source,
		engine:   engine,
		registry: registry,
		events:   ev,
		metrics:  metrics,
		logger:   logger,
	}
}

type districtSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Population    float64 `json:"population"`
	CompositeRisk float64 `json:"composite_risk"`
	Bucket        scoring.Bucket `json:"bucket"`
	Color         string  `json:"color"`
}

// List handles GET /api/v1/districts
func (h *DistrictsHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.features.All()
	out := make([]districtSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, districtSummary{
			ID:            rec.ID,
			Name:          rec.Name,
			Population:    rec.Population,
			CompositeRisk: rec.CompositeRisk,
			Bucket:        scoring.Classify(rec.CompositeRisk),
			Color:         scoring.ColorFor(rec.CompositeRisk),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/districts/{id}
func (h *DistrictsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.features.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "district not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"district": rec,
		"bucket":   scoring.Classify(rec.CompositeRisk),
		"color":    scoring.ColorFor(rec.CompositeRisk),
	})
}

// Style handles GET /api/v1/districts/{id}/style — the current server-side
// styling of the district's rendered layer.
func (h *DistrictsHandler) Style(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, ok := h.registry.Lookup(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "layer not registered"})
		return
	}
	state, ok := entry.Handle.(*selection.StyleState)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "layer style not readable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":    id,
		"style": state.Style(),
	})
}

// Aggregates handles GET /api/v1/aggregates
func (h *DistrictsHandler) Aggregates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Aggregates())
}

// Distribution handles GET /api/v1/risk/distribution
func (h *DistrictsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	counts := h.engine.Distribution()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"counts": counts,
		"total":  h.features.Len(),
	})
}

// Classify handles GET /api/v1/risk/classify?score=
func (h *DistrictsHandler) Classify(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "score must be numeric"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"score":  score,
		"bucket": scoring.Classify(score),
		"color":  scoring.ColorFor(score),
	})
}

// Reload handles POST /api/v1/datasets/reload — re-reads the district source
// and replaces the snapshot wholesale. Registry rebuild and recomputation run
// through the store's replace hooks.
func (h *DistrictsHandler) Reload(w http.ResponseWriter, r *http.Request) {
	records, err := h.source.Load(r.Context())
	if err != nil {
		h.logger.Error("dataset reload failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "dataset reload failed"})
		return
	}

	h.features.Replace(records)
	h.metrics.DatasetReloads.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectDatasetReloaded, events.DatasetReloadedEvent{
			Districts: len(records),
			Timestamp: time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"districts": len(records),
	})
}
