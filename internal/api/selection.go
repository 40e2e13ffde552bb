package api

import (
	"encoding/json"
	"net/http"

	"github.com/floodhub/wardwatch/internal/selection"
)

type SelectionHandler struct {
	ctrl     *selection.Controller
	viewport *selection.ViewportState
	metrics  *Collector
}

func NewSelectionHandler(ctrl *selection.Controller, viewport *selection.ViewportState, metrics *Collector) *SelectionHandler {
	return &SelectionHandler{ctrl: ctrl, viewport: viewport, metrics: metrics}
}

// Get handles GET /api/v1/selection
func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{}
	if id, ok := h.ctrl.Selected(); ok {
		resp["selected_id"] = id
	}
	if id, ok := h.ctrl.Hovered(); ok {
		resp["hovered_id"] = id
	}
	writeJSON(w, http.StatusOK, resp)
}

type selectRequest struct {
	Ward string `json:"ward"`
}

// Select handles POST /api/v1/selection/select — the external by-name
// selection path (search box). Unknown names are accepted and ignored, since
// the search UI sends in-progress query text.
func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Ward == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ward required"})
		return
	}

	if h.ctrl.ExternalSelect(req.Ward) {
		h.metrics.SelectionEvents.WithLabelValues("external_select", "resolved").Inc()
		writeJSON(w, http.StatusOK, map[string]string{"status": "selected"})
		return
	}
	h.metrics.SelectionEvents.WithLabelValues("external_select", "unresolved").Inc()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "unresolved"})
}

type clickRequest struct {
	ID string `json:"id"`
}

// Click handles POST /api/v1/selection/click
func (h *SelectionHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id required"})
		return
	}

	if h.ctrl.Click(req.ID) {
		h.metrics.SelectionEvents.WithLabelValues("click", "resolved").Inc()
		writeJSON(w, http.StatusOK, map[string]string{"status": "selected"})
		return
	}
	h.metrics.SelectionEvents.WithLabelValues("click", "unresolved").Inc()
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "district not registered"})
}

type pointerRequest struct {
	ID    string `json:"id"`
	Event string `json:"event"` // enter or leave
}

// Pointer handles POST /api/v1/selection/pointer — hover previews.
func (h *SelectionHandler) Pointer(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	switch req.Event {
	case "enter":
		h.ctrl.PointerEnter(req.ID)
	case "leave":
		h.ctrl.PointerLeave(req.ID)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "event must be enter or leave"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Viewport handles GET /api/v1/viewport — the last framing request issued by
// an external selection.
func (h *SelectionHandler) Viewport(w http.ResponseWriter, r *http.Request) {
	bounds, padding, ok := h.viewport.Framed()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"framed": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"framed":  true,
		"bounds":  bounds,
		"padding": padding,
	})
}
