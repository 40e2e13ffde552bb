package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/floodhub/wardwatch/internal/events"
	"github.com/floodhub/wardwatch/internal/ward"
)

type ReportsHandler struct {
	features *ward.FeatureStore
	reports  *ward.ReportStore
	hazards  []ward.HazardZone
	events   events.Client
}

func NewReportsHandler(features *ward.FeatureStore, reports *ward.ReportStore, hazards []ward.HazardZone, ev events.Client) *ReportsHandler {
	return &ReportsHandler{features: features, reports: reports, hazards: hazards, events: ev}
}

type createReportRequest struct {
	Ward        string `json:"ward"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Create handles POST /api/v1/reports
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Ward == "" || req.Description == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ward and description required"})
		return
	}
	if req.Severity == "" {
		req.Severity = "LOW"
	}
	if !ward.ValidSeverity(req.Severity) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid severity"})
		return
	}
	if _, ok := h.features.GetByName(req.Ward); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown ward"})
		return
	}

	report := h.reports.Create(req.Ward, req.Severity, req.Description)
	if h.events != nil {
		_ = h.events.Publish(events.SubjectReportCreated(report.ID.String()), events.ReportCreatedEvent{
			ReportID:  report.ID.String(),
			Ward:      report.Ward,
			Severity:  report.Severity,
			Timestamp: time.Now().UTC(),
		})
	}
	writeJSON(w, http.StatusCreated, report)
}

// List handles GET /api/v1/reports
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reports.List())
}

// Hazards handles GET /api/v1/hazards — the static hazard-point dataset.
func (h *ReportsHandler) Hazards(w http.ResponseWriter, r *http.Request) {
	zones := h.hazards
	if zones == nil {
		zones = []ward.HazardZone{}
	}
	writeJSON(w, http.StatusOK, zones)
}
