// Package scoring holds the pure risk scoring and normalization engine:
// min-max normalization primitives, the preparedness index, the risk bucket
// and choropleth color mappings, and the waterlogging probability heuristic.
// Every function here is total over its domain and keeps no hidden state.
package scoring

// Normalize maps value into [0,1] relative to [min,max]. A degenerate range
// (max == min) yields 0 regardless of value. The result is intentionally not
// clamped; callers that need a bounded value wrap it in Clamp01.
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// Clamp01 bounds x to [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Term is one value/weight pair of a linear combination.
type Term struct {
	Value  float64
	Weight float64
}

// WeightedSum is a plain dot product. Callers are responsible for bringing
// the inputs into comparable ranges first.
func WeightedSum(terms []Term) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.Value * t.Weight
	}
	return sum
}
