package ward

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// FeatureCollection mirrors the standard GeoJSON envelope. Properties are kept
// loose because the source dataset mixes numeric and string-encoded values.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// Property keys of the ward dataset.
const (
	propFID          = "FID"
	propWardName     = "WardName"
	propWardNo       = "Ward_No"
	propAssembly     = "AC_Name"
	propPopulation   = "TotalPop"
	propDrainScore   = "drain_score"
	propDrainDensity = "drain_density"
	propRisk         = "composite_risk_score_100"
	propRainfall     = "avg_rainfall"
)

// FileSource loads districts from a GeoJSON file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) ([]DistrictRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open wards dataset: %w", err)
	}
	defer f.Close()
	return DecodeDistricts(f)
}

// DecodeDistricts parses a GeoJSON feature collection into district records.
// Absent or non-numeric properties default to 0, never an error.
func DecodeDistricts(r io.Reader) ([]DistrictRecord, error) {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode wards geojson: %w", err)
	}

	records := make([]DistrictRecord, 0, len(fc.Features))
	for _, f := range fc.Features {
		records = append(records, recordFromFeature(f))
	}
	return records, nil
}

func recordFromFeature(f Feature) DistrictRecord {
	return DistrictRecord{
		ID:            stringProp(f.Properties, propFID),
		Name:          stringProp(f.Properties, propWardName),
		WardNo:        stringProp(f.Properties, propWardNo),
		Assembly:      stringProp(f.Properties, propAssembly),
		Population:    numProp(f.Properties, propPopulation),
		DrainScore:    numProp(f.Properties, propDrainScore),
		DrainDensity:  numProp(f.Properties, propDrainDensity),
		CompositeRisk: numProp(f.Properties, propRisk),
		AvgRainfall:   numProp(f.Properties, propRainfall),
		Geometry:      f.Geometry,
		Bounds:        geometryBounds(f.Geometry),
	}
}

// numProp coerces a property to float64, defaulting to 0 on anything
// non-numeric so that missing data never propagates into arithmetic.
func numProp(props map[string]interface{}, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func stringProp(props map[string]interface{}, key string) string {
	switch v := props[key].(type) {
	case string:
		return v
	case float64:
		// Integral ids arrive as numbers; render them without a decimal point.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// geometryBounds walks the nested coordinate arrays of any geometry type and
// returns the min/max envelope. Coordinates are GeoJSON [lng, lat] pairs.
func geometryBounds(raw json.RawMessage) BBox {
	if len(raw) == 0 {
		return BBox{}
	}
	var g struct {
		Coordinates interface{} `json:"coordinates"`
	}
	if err := json.Unmarshal(raw, &g); err != nil {
		return BBox{}
	}

	b := BBox{MinLat: 90, MinLng: 180, MaxLat: -90, MaxLng: -180}
	found := walkPositions(g.Coordinates, &b)
	if !found {
		return BBox{}
	}
	return b
}

func walkPositions(node interface{}, b *BBox) bool {
	arr, ok := node.([]interface{})
	if !ok || len(arr) == 0 {
		return false
	}

	// A position is a flat array whose first element is a number.
	if lng, ok := arr[0].(float64); ok {
		if len(arr) < 2 {
			return false
		}
		lat, ok := arr[1].(float64)
		if !ok {
			return false
		}
		if lat < b.MinLat {
			b.MinLat = lat
		}
		if lat > b.MaxLat {
			b.MaxLat = lat
		}
		if lng < b.MinLng {
			b.MinLng = lng
		}
		if lng > b.MaxLng {
			b.MaxLng = lng
		}
		return true
	}

	found := false
	for _, child := range arr {
		if walkPositions(child, b) {
			found = true
		}
	}
	return found
}

// LoadHazardZones reads the flat hazard-point dataset.
func LoadHazardZones(path string) ([]HazardZone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hazard dataset: %w", err)
	}
	var zones []HazardZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("decode hazard dataset: %w", err)
	}
	return zones, nil
}
