package ward

import (
	"context"
	"encoding/json"
)

// DistrictRecord is one administrative ward with its precomputed risk
// attributes. Records are created in bulk at load time and never mutated;
// the whole set is replaced wholesale on reload.
type DistrictRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	WardNo       string  `json:"ward_no,omitempty"`
	Assembly     string  `json:"assembly,omitempty"`
	Population   float64 `json:"population"`
	DrainScore   float64 `json:"drain_score"`
	DrainDensity float64 `json:"drain_density"`
	// CompositeRisk is the dataset-supplied 0-100 hazard score, not derived here.
	CompositeRisk float64 `json:"composite_risk"`
	AvgRainfall   float64 `json:"avg_rainfall"`

	// Geometry is opaque to this core; it is passed through to renderers as-is.
	Geometry json.RawMessage `json:"geometry,omitempty"`
	// Bounds is the axis-aligned envelope of the geometry, used for viewport framing.
	Bounds BBox `json:"bounds"`
}

// HazardZone is a reported point-location waterlogging incident.
type HazardZone struct {
	Name     string  `json:"name"`
	Severity string  `json:"severity"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// BBox is a lat/lng bounding box. Zero value means unknown.
type BBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MinLng == 0 && b.MaxLat == 0 && b.MaxLng == 0
}

// DistrictSource loads the full district set from some backing dataset.
type DistrictSource interface {
	Load(ctx context.Context) ([]DistrictRecord, error)
}

// ValidSeverity reports whether s is one of the accepted severity labels.
func ValidSeverity(s string) bool {
	switch s {
	case "LOW", "MEDIUM", "HIGH", "CRITICAL":
		return true
	}
	return false
}
