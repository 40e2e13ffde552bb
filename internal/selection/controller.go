// Package selection keeps a single externally driven district selection
// consistent across independently rendered polygon layers. Each district
// slot is Idle, Hovered, or Selected; at most one district is Selected at a
// time, and Selected styling always wins over Hovered on the same district.
package selection

import (
	"log/slog"
	"sync"

	"github.com/floodhub/wardwatch/internal/scoring"
	"github.com/floodhub/wardwatch/internal/ward"
)

// State is the visual state of one district slot.
type State string

const (
	StateIdle     State = "idle"
	StateHovered  State = "hovered"
	StateSelected State = "selected"
)

// FitPadding is the fixed viewport padding applied when framing a district.
const FitPadding = 40

// Controller reconciles pointer events and external selection requests
// against the layer registry. All transitions run under one mutex, so events
// are processed one at a time.
type Controller struct {
	registry *Registry
	viewport Viewport
	logger   *slog.Logger

	// onSelected fires on every successful click/external-select resolution
	// with the full district record.
	onSelected func(ward.DistrictRecord)

	mu           sync.Mutex
	selectedID   string
	selectedName string
	hoveredID    string
	// pendingName remembers an external selection that could not be resolved
	// yet; it is retried once per registry update.
	pendingName string
	lastGen     uint64
}

func NewController(registry *Registry, viewport Viewport, onSelected func(ward.DistrictRecord), logger *slog.Logger) *Controller {
	c := &Controller{
		registry:   registry,
		viewport:   viewport,
		onSelected: onSelected,
		logger:     logger,
	}
	registry.SetUpdateHook(c.handleRegistryUpdate)
	return c
}

// Selected returns the currently selected district id, if any.
func (c *Controller) Selected() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID, c.selectedID != ""
}

// Hovered returns the currently hovered district id, if any.
func (c *Controller) Hovered() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hoveredID, c.hoveredID != ""
}

// StateOf reports the visual state of one district slot.
func (c *Controller) StateOf(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch id {
	case c.selectedID:
		return StateSelected
	case c.hoveredID:
		return StateHovered
	default:
		return StateIdle
	}
}

// PointerEnter applies hover preview styling. The current selection is never
// restyled by hover.
func (c *Controller) PointerEnter(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == c.selectedID {
		return
	}
	if c.hoveredID != "" && c.hoveredID != id {
		c.restyleBaseline(c.hoveredID)
	}
	entry, ok := c.registry.Lookup(id)
	if !ok {
		return
	}
	c.hoveredID = id
	entry.Handle.SetStyle(HoverStyle(scoring.ColorFor(entry.District.CompositeRisk)))
}

// PointerLeave reverts hover styling. No-op on the current selection, so the
// persisted selection styling survives the pointer passing over it.
func (c *Controller) PointerLeave(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == c.selectedID {
		return
	}
	if c.hoveredID == id {
		c.hoveredID = ""
	}
	c.restyleBaseline(id)
}

// Click moves the persisted selection to id and notifies the ward-selected
// observer. The previous selection falls back to its own baseline risk
// coloring. Returns false if id is not registered.
func (c *Controller) Click(id string) bool {
	c.mu.Lock()
	entry, ok := c.registry.Lookup(id)
	if !ok {
		c.mu.Unlock()
		c.logger.Debug("click on unregistered district", "district_id", id)
		return false
	}
	c.applySelection(entry)
	record := entry.District
	c.mu.Unlock()

	c.notify(record)
	return true
}

// ExternalSelect resolves a district by display name and selects it as Click
// does, additionally framing the viewport to the district's bounds. An
// unknown name is a silent no-op that leaves the current selection intact;
// the name is kept pending and re-resolved once per registry update, so a
// request racing dataset load is not marooned. Returns true when resolved
// immediately.
func (c *Controller) ExternalSelect(name string) bool {
	if name == "" {
		return false
	}

	c.mu.Lock()
	id, ok := c.registry.ResolveName(name)
	if !ok {
		c.pendingName = name
		c.mu.Unlock()
		c.logger.Debug("external select unresolved", "name", name)
		return false
	}
	entry, ok := c.registry.Lookup(id)
	if !ok {
		c.pendingName = name
		c.mu.Unlock()
		return false
	}
	c.pendingName = ""
	c.applySelection(entry)
	c.frame(entry)
	record := entry.District
	c.mu.Unlock()

	c.notify(record)
	return true
}

// handleRegistryUpdate runs after every registry change. A generation bump
// means the dataset was reloaded: old layer handles are gone, so the current
// selection is demoted to a pending by-name selection and re-resolved
// against the new layers as they register.
func (c *Controller) handleRegistryUpdate() {
	c.mu.Lock()

	if gen := c.registry.Generation(); gen != c.lastGen {
		c.lastGen = gen
		if c.selectedID != "" {
			c.pendingName = c.selectedName
			c.selectedID = ""
			c.selectedName = ""
		}
		c.hoveredID = ""
	}

	if c.pendingName == "" {
		c.mu.Unlock()
		return
	}
	id, ok := c.registry.ResolveName(c.pendingName)
	if !ok {
		c.mu.Unlock()
		return
	}
	entry, ok := c.registry.Lookup(id)
	if !ok {
		c.mu.Unlock()
		return
	}
	c.logger.Info("pending selection resolved", "name", c.pendingName, "district_id", id)
	c.pendingName = ""
	c.applySelection(entry)
	c.frame(entry)
	record := entry.District
	c.mu.Unlock()

	c.notify(record)
}

// applySelection restyles the previous selection back to baseline and marks
// entry as selected. Caller holds the mutex.
func (c *Controller) applySelection(entry Entry) {
	if c.selectedID != "" && c.selectedID != entry.District.ID {
		c.restyleBaseline(c.selectedID)
	}
	if c.hoveredID == entry.District.ID {
		c.hoveredID = ""
	}
	// A resolved selection supersedes any older unresolved request.
	c.pendingName = ""
	c.selectedID = entry.District.ID
	c.selectedName = entry.District.Name
	entry.Handle.SetStyle(SelectedStyle(scoring.ColorFor(entry.District.CompositeRisk)))
}

// restyleBaseline pushes the idle risk-color style for id, tolerating
// unregistered ids. Caller holds the mutex.
func (c *Controller) restyleBaseline(id string) {
	entry, ok := c.registry.Lookup(id)
	if !ok {
		return
	}
	entry.Handle.SetStyle(BaselineStyle(scoring.ColorFor(entry.District.CompositeRisk)))
}

func (c *Controller) frame(entry Entry) {
	if c.viewport == nil || entry.District.Bounds.IsZero() {
		return
	}
	c.viewport.FitBounds(entry.District.Bounds, FitPadding)
}

func (c *Controller) notify(record ward.DistrictRecord) {
	if c.onSelected != nil {
		c.onSelected(record)
	}
}
