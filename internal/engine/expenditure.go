package engine

import "strings"

// speedTiers map measured speed (km/h) to a MET value. The first tier whose
// bound exceeds the speed wins; anything faster gets fastestMET.
var speedTiers = []struct {
	below float64
	met   float64
}{
	{3.5, 2.5},
	{5.5, 3.5},
	{7.0, 4.5},
	{10.0, 8.0},
}

const fastestMET = 10.0

// labelMETs are checked in order against the lower-cased activity label.
var labelMETs = []struct {
	keywords []string
	met      float64
}{
	{[]string{"walk"}, 3.5},
	{[]string{"run"}, 8.0},
	{[]string{"yoga"}, 2.5},
	{[]string{"lift", "weight"}, 4.0},
	{[]string{"hiit"}, 8.0},
}

const defaultMET = 4.5

// ActivitySample is one workout as seen by the expenditure estimator.
// DistanceKm of zero means no distance was recorded.
type ActivitySample struct {
	Label        string  `json:"activity_type"`
	DurationMins float64 `json:"duration_mins"`
	DistanceKm   float64 `json:"distance_km,omitempty"`
}

// Calories estimates the energy cost of the sample for a body of weightKg.
func (s ActivitySample) Calories(weightKg float64) int {
	return CaloriesBurned(s.Label, s.DurationMins, weightKg, s.DistanceKm)
}

// METFor picks the MET value for a session. A positive distance over a
// positive duration is classified by speed; otherwise the label decides.
func METFor(label string, durationMins, distanceKm float64) float64 {
	if distanceKm > 0 && durationMins > 0 {
		speedKmh := distanceKm / (durationMins / 60)
		for _, tier := range speedTiers {
			if speedKmh < tier.below {
				return tier.met
			}
		}
		return fastestMET
	}

	l := strings.ToLower(label)
	for _, entry := range labelMETs {
		for _, kw := range entry.keywords {
			if strings.Contains(l, kw) {
				return entry.met
			}
		}
	}
	return defaultMET
}

// CaloriesBurned returns round(MET × weightKg × hours). Non-positive duration
// or weight burns nothing, and the result never goes below zero.
func CaloriesBurned(label string, durationMins, weightKg, distanceKm float64) int {
	if durationMins <= 0 || weightKg <= 0 {
		return 0
	}
	met := METFor(label, durationMins, distanceKm)
	return max(0, roundInt(met*weightKg*(durationMins/60)))
}
