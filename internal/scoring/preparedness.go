package scoring

import (
	"math"

	"github.com/floodhub/wardwatch/internal/ward"
)

// CriticalRiskThreshold is the composite risk score above which a district
// counts as critical in the aggregates.
const CriticalRiskThreshold = 75.0

// PreparednessWeights are the fixed per-district weights of the preparedness
// formula. Population and risk weigh negatively: denser, riskier wards are
// less prepared at equal drainage.
type PreparednessWeights struct {
	DrainScore   float64
	DrainDensity float64
	Population   float64
	Risk         float64
}

func DefaultPreparednessWeights() PreparednessWeights {
	return PreparednessWeights{
		DrainScore:   0.45,
		DrainDensity: 0.25,
		Population:   -0.20,
		Risk:         -0.10,
	}
}

// Aggregates are the derived read-only statistics over the current district
// snapshot, recomputed wholesale whenever the snapshot changes.
type Aggregates struct {
	// Index is the preparedness index in [0,100].
	Index         int     `json:"preparedness_index"`
	MeanRisk      float64 `json:"mean_risk"`
	MeanRainfall  float64 `json:"mean_rainfall"`
	CriticalCount int     `json:"critical_count"`
	Districts     int     `json:"districts"`
}

// ComputeAggregates evaluates the preparedness index and companion scalars
// over the full district set. An empty set yields the zero Aggregates; no
// branch divides by zero.
func ComputeAggregates(records []ward.DistrictRecord) Aggregates {
	if len(records) == 0 {
		return Aggregates{}
	}

	w := DefaultPreparednessWeights()

	// Dataset-wide ranges for the columns that still need normalization,
	// computed once, not per district.
	minDensity, maxDensity := records[0].DrainDensity, records[0].DrainDensity
	minPop, maxPop := records[0].Population, records[0].Population
	for _, r := range records[1:] {
		minDensity = math.Min(minDensity, r.DrainDensity)
		maxDensity = math.Max(maxDensity, r.DrainDensity)
		minPop = math.Min(minPop, r.Population)
		maxPop = math.Max(maxPop, r.Population)
	}

	var agg Aggregates
	var totalPrep float64
	for _, r := range records {
		prep := WeightedSum([]Term{
			{Value: Clamp01(r.DrainScore), Weight: w.DrainScore},
			{Value: Normalize(r.DrainDensity, minDensity, maxDensity), Weight: w.DrainDensity},
			{Value: Normalize(r.Population, minPop, maxPop), Weight: w.Population},
			{Value: Clamp01(r.CompositeRisk / 100), Weight: w.Risk},
		})
		totalPrep += Clamp01(prep)

		agg.MeanRisk += r.CompositeRisk
		agg.MeanRainfall += r.AvgRainfall
		if r.CompositeRisk > CriticalRiskThreshold {
			agg.CriticalCount++
		}
	}

	n := float64(len(records))
	agg.Index = int(math.Round(totalPrep / n * 100))
	agg.MeanRisk /= n
	agg.MeanRainfall /= n
	agg.Districts = len(records)
	return agg
}
