package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaloriesBurned_SpeedOverridesLabel(t *testing.T) {
	// 12 km in an hour is the top speed tier, not a walk.
	assert.Equal(t, 700, CaloriesBurned("walk", 60, 70, 12))
}

func TestMETFor_SpeedTiers(t *testing.T) {
	cases := []struct {
		distanceKm float64
		want       float64
	}{
		{3, 2.5},
		{3.5, 3.5},
		{5, 3.5},
		{6, 4.5},
		{7, 8.0},
		{9, 8.0},
		{10, 10.0},
		{15, 10.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, METFor("yoga", 60, tc.distanceKm), "distance %.1f km in 60 min", tc.distanceKm)
	}
}

func TestMETFor_Labels(t *testing.T) {
	cases := []struct {
		label string
		want  float64
	}{
		{"Morning Walk", 3.5},
		{"Trail RUN", 8.0},
		{"Power Yoga", 2.5},
		{"Weightlifting", 4.0},
		{"deadlift day", 4.0},
		{"HIIT circuit", 8.0},
		{"Swimming", 4.5},
		{"", 4.5},
		{"walk then run", 3.5},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, METFor(tc.label, 45, 0))
		})
	}
}

func TestCaloriesBurned(t *testing.T) {
	assert.Equal(t, 320, CaloriesBurned("run", 30, 80, 0))
	assert.Equal(t, 158, CaloriesBurned("cycling", 30, 70, 0))
}

func TestCaloriesBurned_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, CaloriesBurned("run", 0, 70, 5))
	assert.Equal(t, 0, CaloriesBurned("run", -10, 70, 0))
	assert.Equal(t, 0, CaloriesBurned("run", 30, 0, 0))
}

func TestCaloriesBurned_Overflow(t *testing.T) {
	// 8 · 1e306 · 24 exceeds MaxFloat64.
	assert.Equal(t, maxRounded, CaloriesBurned("run", 1440, 1e306, 0))
}

func TestActivitySample_Calories(t *testing.T) {
	s := ActivitySample{Label: "walk", DurationMins: 60, DistanceKm: 12}
	assert.Equal(t, CaloriesBurned("walk", 60, 70, 12), s.Calories(70))
}
