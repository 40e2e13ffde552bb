package selection

import (
	"strings"
	"sync"

	"github.com/floodhub/wardwatch/internal/ward"
)

// LayerHandle is the controller's view of one rendered polygon layer. The
// renderer owns the drawing; the controller only pushes styles through it.
type LayerHandle interface {
	SetStyle(Style)
}

// Viewport frames the map view. FitBounds pads the box by a fixed pixel
// margin on each side.
type Viewport interface {
	FitBounds(bounds ward.BBox, padding int)
}

// Entry binds a district to its rendered layer. Bounds come from the
// renderer's own bounding-box primitive, carried on the district record.
type Entry struct {
	District ward.DistrictRecord
	Handle   LayerHandle
}

// Registry maps district ids to their rendered layers. It is populated
// incrementally as the renderer instantiates layers (order not guaranteed)
// and reset wholesale when the underlying dataset reloads, so identifiers
// from different dataset versions never collide. Readers always observe a
// complete map, never a mid-rebuild state.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	idByName   map[string]string
	generation uint64

	// onUpdate runs after every Register and Reset, outside the lock.
	// The controller uses it to re-resolve a pending external selection.
	onUpdate func()
}

func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]Entry),
		idByName: make(map[string]string),
	}
}

// SetUpdateHook installs the callback invoked after each registry change.
func (r *Registry) SetUpdateHook(fn func()) {
	r.onUpdate = fn
}

// Register adds one layer entry, replacing any previous entry for the id.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	r.entries[e.District.ID] = e
	r.idByName[strings.ToLower(e.District.Name)] = e.District.ID
	r.mu.Unlock()

	if r.onUpdate != nil {
		r.onUpdate()
	}
}

// Reset drops every entry and bumps the dataset generation. Called before
// re-registering layers for a reloaded dataset.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.entries = make(map[string]Entry)
	r.idByName = make(map[string]string)
	r.generation++
	r.mu.Unlock()

	if r.onUpdate != nil {
		r.onUpdate()
	}
}

func (r *Registry) Lookup(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

// ResolveName maps a district display name to its id, case-insensitively.
func (r *Registry) ResolveName(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.idByName[strings.ToLower(name)]
	return id, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// StyleState is a server-side LayerHandle that records the last style pushed
// to it, letting API clients read back each district's current styling.
type StyleState struct {
	mu    sync.RWMutex
	style Style
}

func NewStyleState(initial Style) *StyleState {
	return &StyleState{style: initial}
}

func (s *StyleState) SetStyle(style Style) {
	s.mu.Lock()
	s.style = style
	s.mu.Unlock()
}

func (s *StyleState) Style() Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// ViewportState is a server-side Viewport recording the last framing request.
type ViewportState struct {
	mu      sync.RWMutex
	bounds  *ward.BBox
	padding int
}

func NewViewportState() *ViewportState {
	return &ViewportState{}
}

func (v *ViewportState) FitBounds(bounds ward.BBox, padding int) {
	v.mu.Lock()
	b := bounds
	v.bounds = &b
	v.padding = padding
	v.mu.Unlock()
}

// Framed returns the last framed bounds, or false if nothing was framed yet.
func (v *ViewportState) Framed() (ward.BBox, int, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.bounds == nil {
		return ward.BBox{}, 0, false
	}
	return *v.bounds, v.padding, true
}
