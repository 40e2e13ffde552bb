package scoring

import (
	"testing"

	"github.com/floodhub/wardwatch/internal/ward"
)

func TestEngineRecompute(t *testing.T) {
	e := NewEngine()

	if agg := e.Aggregates(); agg.Districts != 0 {
		t.Errorf("fresh engine must report empty aggregates, got %+v", agg)
	}
	if dist := e.Distribution(); dist[BucketLow] != 0 || len(dist) != 4 {
		t.Errorf("fresh engine must report a zeroed distribution, got %v", dist)
	}

	e.Recompute([]ward.DistrictRecord{
		{ID: "1", CompositeRisk: 10, AvgRainfall: 5},
		{ID: "2", CompositeRisk: 80, AvgRainfall: 15},
	})
	agg := e.Aggregates()
	if agg.Districts != 2 || agg.MeanRisk != 45 || agg.CriticalCount != 1 {
		t.Errorf("unexpected aggregates: %+v", agg)
	}
	dist := e.Distribution()
	if dist[BucketLow] != 1 || dist[BucketCritical] != 1 {
		t.Errorf("unexpected distribution: %v", dist)
	}

	// A smaller snapshot fully replaces the previous views.
	e.Recompute([]ward.DistrictRecord{{ID: "3", CompositeRisk: 30}})
	if agg := e.Aggregates(); agg.Districts != 1 {
		t.Errorf("recompute must replace aggregates, got %+v", agg)
	}
}

func TestEngineDistributionReturnsCopy(t *testing.T) {
	e := NewEngine()
	e.Recompute([]ward.DistrictRecord{{ID: "1", CompositeRisk: 10}})

	dist := e.Distribution()
	dist[BucketLow] = 99
	if e.Distribution()[BucketLow] != 1 {
		t.Error("Distribution must return a copy of the cached counts")
	}
}
