package scoring

import "github.com/floodhub/wardwatch/internal/ward"

// Bucket is a discrete severity band over the 0-100 composite risk score.
type Bucket string

const (
	BucketLow      Bucket = "LOW"
	BucketMedium   Bucket = "MEDIUM"
	BucketHigh     Bucket = "HIGH"
	BucketCritical Bucket = "CRITICAL"
)

// Buckets lists the severity bands in ascending order.
var Buckets = []Bucket{BucketLow, BucketMedium, BucketHigh, BucketCritical}

// Classify maps a composite risk score to its quartile bucket using half-open
// thresholds: [0,25) LOW, [25,50) MEDIUM, [50,75) HIGH, [75,∞) CRITICAL.
// These quartile buckets feed the distribution histogram; the choropleth uses
// the separate quintile bands of ColorFor. The two threshold sets differ on
// purpose and must not be unified.
func Classify(score float64) Bucket {
	switch {
	case score < 25:
		return BucketLow
	case score < 50:
		return BucketMedium
	case score < 75:
		return BucketHigh
	default:
		return BucketCritical
	}
}

// Choropleth color bands, lowest to highest.
const (
	colorGreen  = "#22c55e"
	colorYellow = "#eab308"
	colorOrange = "#f97316"
	colorRed    = "#ef4444"
	colorBrown  = "#78350f"
)

// ColorFor maps a composite risk score to one of five fixed color bands at
// 0.2/0.4/0.6/0.8 of the score's fraction of 100, the highest band
// open-ended.
func ColorFor(score float64) string {
	switch p := score / 100; {
	case p <= 0.2:
		return colorGreen
	case p <= 0.4:
		return colorYellow
	case p <= 0.6:
		return colorOrange
	case p <= 0.8:
		return colorRed
	default:
		return colorBrown
	}
}

// Distribution counts districts per quartile bucket.
func Distribution(records []ward.DistrictRecord) map[Bucket]int {
	counts := map[Bucket]int{
		BucketLow:      0,
		BucketMedium:   0,
		BucketHigh:     0,
		BucketCritical: 0,
	}
	for _, r := range records {
		counts[Classify(r.CompositeRisk)]++
	}
	return counts
}
