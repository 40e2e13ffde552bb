package scoring

import (
	"testing"

	"github.com/floodhub/wardwatch/internal/ward"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Bucket
	}{
		{0, BucketLow},
		{24.9, BucketLow},
		{25, BucketMedium},
		{49.9, BucketMedium},
		{50, BucketHigh},
		{74.9, BucketHigh},
		{75, BucketCritical},
		{100, BucketCritical},
		{250, BucketCritical},
		{-10, BucketLow},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, colorGreen},
		{20, colorGreen},
		{20.1, colorYellow},
		{40, colorYellow},
		{40.1, colorOrange},
		{60, colorOrange},
		{60.1, colorRed},
		{80, colorRed},
		{80.1, colorBrown},
		{100, colorBrown},
		{500, colorBrown},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.score); got != tt.want {
			t.Errorf("ColorFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// The quartile buckets and quintile color bands intentionally disagree in
// the 20-25 range; a score there is LOW but already yellow.
func TestClassifyAndColorForDiverge(t *testing.T) {
	if Classify(22) != BucketLow {
		t.Errorf("expected 22 to classify LOW")
	}
	if ColorFor(22) != colorYellow {
		t.Errorf("expected 22 to color yellow")
	}
}

func TestDistribution(t *testing.T) {
	records := []ward.DistrictRecord{
		{ID: "1", CompositeRisk: 10},
		{ID: "2", CompositeRisk: 30},
		{ID: "3", CompositeRisk: 55},
		{ID: "4", CompositeRisk: 60},
		{ID: "5", CompositeRisk: 90},
	}
	dist := Distribution(records)
	want := map[Bucket]int{
		BucketLow:      1,
		BucketMedium:   1,
		BucketHigh:     2,
		BucketCritical: 1,
	}
	for bucket, n := range want {
		if dist[bucket] != n {
			t.Errorf("distribution[%s] = %d, want %d", bucket, dist[bucket], n)
		}
	}
}

func TestDistributionEmptyHasAllBuckets(t *testing.T) {
	dist := Distribution(nil)
	if len(dist) != len(Buckets) {
		t.Fatalf("expected %d buckets, got %d", len(Buckets), len(dist))
	}
	for _, b := range Buckets {
		if n, ok := dist[b]; !ok || n != 0 {
			t.Errorf("expected bucket %s present with count 0, got %d (present=%v)", b, n, ok)
		}
	}
}
