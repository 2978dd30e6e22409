package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfile() Profile {
	w, h, age, g := 70.0, 175.0, 30, Male
	return Profile{WeightKg: &w, HeightCm: &h, Age: &age, Gender: &g}
}

func TestProfile_BodyMetrics(t *testing.T) {
	m, ok := completeProfile().BodyMetrics()
	require.True(t, ok)
	assert.Equal(t, maleMetrics(), m)

	p := completeProfile()
	p.HeightCm = nil
	_, ok = p.BodyMetrics()
	assert.False(t, ok)
}

func TestProfile_ActivityContextDefaults(t *testing.T) {
	ac := Profile{}.ActivityContext()
	assert.Equal(t, ActivityContext{Level: Moderate, Goal: Maintain}, ac)
}

func TestSumNutrition(t *testing.T) {
	got := SumNutrition([]NutritionEntry{
		{Calories: 500, Macros: Macros{ProteinG: 30, CarbsG: 50, FatG: 20}},
		{Calories: 300, Macros: Macros{ProteinG: 10.5, CarbsG: 40, FatG: 8}},
	})
	assert.Equal(t, 800, got.Calories)
	assert.Equal(t, Macros{ProteinG: 40.5, CarbsG: 90, FatG: 28}, got.Macros)
}

func TestWorkoutCalories_PrefersRecorded(t *testing.T) {
	entries := []WorkoutEntry{
		{ActivitySample: ActivitySample{Label: "run", DurationMins: 30}},
		{ActivitySample: ActivitySample{Label: "ride", DurationMins: 90}, Calories: 650},
	}
	assert.Equal(t, 280+650, WorkoutCalories(entries, 70))
	assert.Equal(t, 650, WorkoutCalories(entries, 0))
}

func TestBuildSnapshot(t *testing.T) {
	now := time.Date(2026, time.October, 15, 19, 0, 0, 0, time.UTC)
	foods := []NutritionEntry{{Calories: 1000}, {Calories: 800}}
	today := []WorkoutEntry{
		{ActivitySample: ActivitySample{Label: "run", DurationMins: 30}, Date: now},
	}
	history := append([]WorkoutEntry{
		{ActivitySample: ActivitySample{Label: "yoga", DurationMins: 20}, Date: now.AddDate(0, 0, -1)},
	}, today...)

	s := BuildSnapshot(completeProfile(), foods, today, history, now)
	assert.Equal(t, "2026-10-15", s.Date)
	assert.False(t, s.MissingMetrics)
	require.NotNil(t, s.Targets)
	assert.Equal(t, 2556, s.Targets.Calories)
	assert.Equal(t, 1800, s.Nutrition.Calories)
	assert.Equal(t, 280, s.CaloriesOut)
	require.NotNil(t, s.Flux)
	assert.Equal(t, 1800-(2556+280), s.Flux.Balance)
	assert.Equal(t, ZoneDeficit, s.Flux.Zone)
	assert.Equal(t, 2, s.Streak)
}

func TestBuildSnapshot_MissingMetrics(t *testing.T) {
	now := time.Date(2026, time.October, 15, 19, 0, 0, 0, time.UTC)
	s := BuildSnapshot(Profile{Goal: Lose}, []NutritionEntry{{Calories: 400}}, nil, nil, now)
	assert.True(t, s.MissingMetrics)
	assert.Nil(t, s.Targets)
	assert.Nil(t, s.Flux)
	assert.Equal(t, 400, s.Nutrition.Calories)
	assert.Equal(t, 0, s.Streak)
}
