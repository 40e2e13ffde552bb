package scoring

// WaterlogLevel is the severity band of a waterlogging assessment.
type WaterlogLevel string

const (
	WaterlogLow    WaterlogLevel = "LOW"
	WaterlogMedium WaterlogLevel = "MEDIUM"
	WaterlogHigh   WaterlogLevel = "HIGH"
)

// WaterlogInputs are the four weather factors the heuristic reads: the first
// forecast day's rain chance and total precipitation, plus current humidity
// and wind speed.
type WaterlogInputs struct {
	RainChancePercent float64 `json:"rain_chance_percent"`
	PrecipMM          float64 `json:"precip_mm"`
	HumidityPercent   float64 `json:"humidity_percent"`
	WindKPH           float64 `json:"wind_kph"`
}

// WaterlogAssessment is the deterministic waterlogging probability derived
// from a weather snapshot, distinct from the dataset's composite risk score.
type WaterlogAssessment struct {
	Score   int            `json:"score"`
	Level   WaterlogLevel  `json:"level"`
	Message string         `json:"message"`
	Inputs  WaterlogInputs `json:"inputs"`
}

const (
	msgWaterlogLow    = "Low chance of waterlogging. Conditions look manageable."
	msgWaterlogMedium = "Moderate waterlogging risk. Carry protection and avoid poorly drained roads."
	msgWaterlogHigh   = "High chance of waterlogging in low-lying areas. Avoid underpasses & flooded streets."
)

// AssessWaterlog scores waterlogging probability additively across four
// independent factors, each contributing from its own tier list at most once.
// The sum is capped at 100 and is never negative. Identical inputs always
// produce identical output.
func AssessWaterlog(in WaterlogInputs) WaterlogAssessment {
	score := 0

	switch chance := in.RainChancePercent; {
	case chance >= 80:
		score += 45
	case chance >= 70:
		score += 35
	case chance >= 50:
		score += 22
	case chance >= 30:
		score += 12
	}

	switch precip := in.PrecipMM; {
	case precip >= 30:
		score += 40
	case precip >= 20:
		score += 30
	case precip >= 10:
		score += 20
	case precip >= 5:
		score += 10
	}

	switch humidity := in.HumidityPercent; {
	case humidity >= 85:
		score += 12
	case humidity >= 75:
		score += 8
	case humidity >= 60:
		score += 4
	}

	// Inverse relationship: calmer wind means stagnant water.
	switch wind := in.WindKPH; {
	case wind <= 6:
		score += 10
	case wind <= 12:
		score += 6
	}

	if score > 100 {
		score = 100
	}

	level := WaterlogLow
	message := msgWaterlogLow
	switch {
	case score >= 70:
		level = WaterlogHigh
		message = msgWaterlogHigh
	case score >= 40:
		level = WaterlogMedium
		message = msgWaterlogMedium
	}

	return WaterlogAssessment{
		Score:   score,
		Level:   level,
		Message: message,
		Inputs:  in,
	}
}
