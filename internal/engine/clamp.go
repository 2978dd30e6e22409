package engine

import "math"

// maxRounded bounds every float-to-int conversion; int() of anything larger,
// of ±Inf or of NaN is implementation-defined.
const maxRounded = 1 << 53

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat limits v to [lo, hi]. NaN maps to lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundInt rounds v to the nearest int, saturating at ±maxRounded. NaN is 0.
func roundInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= maxRounded:
		return maxRounded
	case v <= -maxRounded:
		return -maxRounded
	}
	return int(math.Round(v))
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
