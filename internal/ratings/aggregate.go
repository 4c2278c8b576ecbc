package ratings

import (
	"math"
)

const (
	minBucket = 1
	maxBucket = 5
)

// Summary holds the aggregate over a photo's rating values. Average is 0 when
// Count is 0, never NaN. Distribution always contains all five buckets.
type Summary struct {
	Average      float64
	Count        int
	Distribution map[int]int
}

// Aggregate computes count, arithmetic mean and per-star distribution over raw
// rating values. Values are assigned to buckets by rounding half away from
// zero and clamping into [1,5], so anything written around the validated path
// (e.g. a direct data edit) still lands in a bucket rather than being dropped.
func Aggregate(values []float64) Summary {
	distribution := make(map[int]int, maxBucket)
	for b := minBucket; b <= maxBucket; b++ {
		distribution[b] = 0
	}

	if len(values) == 0 {
		return Summary{Average: 0, Count: 0, Distribution: distribution}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
		distribution[bucket(v)]++
	}

	return Summary{
		Average:      sum / float64(len(values)),
		Count:        len(values),
		Distribution: distribution,
	}
}

// bucket rounds half away from zero (math.Round's tie rule), then clamps into
// [minBucket, maxBucket].
func bucket(v float64) int {
	b := int(math.Round(v))
	if b < minBucket {
		return minBucket
	}
	if b > maxBucket {
		return maxBucket
	}
	return b
}
