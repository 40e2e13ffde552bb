package ward

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "FID": 1,
        "WardName": "Karol Bagh",
        "Ward_No": "91",
        "AC_Name": "Karol Bagh AC",
        "TotalPop": 150000,
        "drain_score": 0.62,
        "drain_density": "4.8",
        "composite_risk_score_100": 71.5,
        "avg_rainfall": 18.2
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[77.18, 28.64], [77.20, 28.64], [77.20, 28.66], [77.18, 28.66], [77.18, 28.64]]]
      }
    },
    {
      "type": "Feature",
      "properties": {
        "FID": "W-002",
        "WardName": "Sparse Ward"
      },
      "geometry": null
    }
  ]
}`

func TestDecodeDistricts(t *testing.T) {
	records, err := DecodeDistricts(strings.NewReader(sampleGeoJSON))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.ID != "1" {
		t.Errorf("numeric FID should render without decimal, got %q", r.ID)
	}
	if r.Name != "Karol Bagh" || r.WardNo != "91" || r.Assembly != "Karol Bagh AC" {
		t.Errorf("unexpected identity fields: %+v", r)
	}
	if r.Population != 150000 || r.DrainScore != 0.62 || r.CompositeRisk != 71.5 || r.AvgRainfall != 18.2 {
		t.Errorf("unexpected numeric fields: %+v", r)
	}
	if r.DrainDensity != 4.8 {
		t.Errorf("string-encoded number should coerce, got %v", r.DrainDensity)
	}
	want := BBox{MinLat: 28.64, MinLng: 77.18, MaxLat: 28.66, MaxLng: 77.20}
	if r.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", r.Bounds, want)
	}

	sparse := records[1]
	if sparse.ID != "W-002" {
		t.Errorf("string FID should pass through, got %q", sparse.ID)
	}
	if sparse.Population != 0 || sparse.DrainScore != 0 || sparse.CompositeRisk != 0 {
		t.Errorf("missing numeric properties must default to 0: %+v", sparse)
	}
	if !sparse.Bounds.IsZero() {
		t.Errorf("null geometry must yield zero bounds, got %+v", sparse.Bounds)
	}
}

func TestDecodeDistrictsInvalidJSON(t *testing.T) {
	if _, err := DecodeDistricts(strings.NewReader("{not json")); err == nil {
		t.Error("expected error on malformed input")
	}
}

func TestNumProp(t *testing.T) {
	props := map[string]interface{}{
		"float":    12.5,
		"string":   "7.25",
		"badstr":   "n/a",
		"bool":     true,
		"number":   json.Number("3.5"),
		"badnum":   json.Number("xx"),
		"nil":      nil,
	}
	tests := []struct {
		key  string
		want float64
	}{
		{"float", 12.5},
		{"string", 7.25},
		{"badstr", 0},
		{"bool", 0},
		{"number", 3.5},
		{"badnum", 0},
		{"nil", 0},
		{"absent", 0},
	}
	for _, tt := range tests {
		if got := numProp(props, tt.key); got != tt.want {
			t.Errorf("numProp(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestStringProp(t *testing.T) {
	props := map[string]interface{}{
		"string":   "Rohini",
		"integral": float64(42),
		"decimal":  3.75,
		"bool":     true,
	}
	tests := []struct {
		key  string
		want string
	}{
		{"string", "Rohini"},
		{"integral", "42"},
		{"decimal", "3.75"},
		{"bool", ""},
		{"absent", ""},
	}
	for _, tt := range tests {
		if got := stringProp(props, tt.key); got != tt.want {
			t.Errorf("stringProp(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestGeometryBoundsMultiPolygon(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "MultiPolygon",
		"coordinates": [
			[[[77.0, 28.5], [77.1, 28.5], [77.1, 28.6], [77.0, 28.5]]],
			[[[77.3, 28.8], [77.4, 28.8], [77.4, 28.9], [77.3, 28.8]]]
		]
	}`)
	got := geometryBounds(raw)
	want := BBox{MinLat: 28.5, MinLng: 77.0, MaxLat: 28.9, MaxLng: 77.4}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestGeometryBoundsDegenerate(t *testing.T) {
	cases := []json.RawMessage{
		nil,
		json.RawMessage(`null`),
		json.RawMessage(`{}`),
		json.RawMessage(`{"coordinates": []}`),
		json.RawMessage(`{"coordinates": "oops"}`),
	}
	for _, raw := range cases {
		if got := geometryBounds(raw); !got.IsZero() {
			t.Errorf("geometryBounds(%s) = %+v, want zero", raw, got)
		}
	}
}

func TestValidSeverity(t *testing.T) {
	for _, s := range []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"} {
		if !ValidSeverity(s) {
			t.Errorf("expected %q valid", s)
		}
	}
	for _, s := range []string{"", "low", "SEVERE", "Medium"} {
		if ValidSeverity(s) {
			t.Errorf("expected %q invalid", s)
		}
	}
}
