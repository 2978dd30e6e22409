package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maleMetrics() BodyMetrics {
	return BodyMetrics{WeightKg: 70, HeightCm: 175, Age: 30, Gender: Male}
}

func TestBMR(t *testing.T) {
	m := maleMetrics()
	assert.InDelta(t, 1648.75, BMR(m), 1e-9)

	m.Gender = Female
	assert.InDelta(t, 1482.75, BMR(m), 1e-9)
}

func TestBMR_Monotonic(t *testing.T) {
	m := maleMetrics()
	prev := BMR(m)
	for w := 71.0; w <= 150; w += 7.5 {
		m.WeightKg = w
		cur := BMR(m)
		assert.Greater(t, cur, prev, "weight %.1f", w)
		prev = cur
	}

	m = maleMetrics()
	prev = BMR(m)
	for h := 176.0; h <= 210; h += 3 {
		m.HeightCm = h
		cur := BMR(m)
		assert.Greater(t, cur, prev, "height %.1f", h)
		prev = cur
	}
}

func TestDailyTarget(t *testing.T) {
	bmr := BMR(maleMetrics())

	cases := []struct {
		name  string
		level ActivityLevel
		goal  Goal
		want  int
	}{
		{"moderate maintain", Moderate, Maintain, 2556},
		{"athlete gain", Athlete, Gain, 3633},
		{"light lose", Light, Lose, 1767},
		{"active maintain", Active, Maintain, 2844},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DailyTarget(bmr, tc.level, tc.goal))
		})
	}
}

func TestDailyTarget_UnknownFallsBack(t *testing.T) {
	bmr := BMR(maleMetrics())
	assert.Equal(t,
		DailyTarget(bmr, Moderate, Maintain),
		DailyTarget(bmr, "unknown-level", "unknown-goal"))
	assert.Equal(t,
		DailyTarget(bmr, Moderate, Lose),
		DailyTarget(bmr, "", Lose))
}

func TestMacroSplit(t *testing.T) {
	got := MacroSplit(2556, 70, Maintain)
	assert.Equal(t, EnergyTargets{Calories: 2556, ProteinG: 112, CarbsG: 385, FatG: 63}, got)

	got = MacroSplit(2056, 70, Lose)
	assert.Equal(t, EnergyTargets{Calories: 2056, ProteinG: 154, CarbsG: 218, FatG: 63}, got)
}

func TestMacroSplit_Conservation(t *testing.T) {
	for _, goal := range []Goal{Lose, Maintain, Gain} {
		for _, cals := range []int{1600, 2000, 2555, 3100} {
			m := MacroSplit(cals, 82.3, goal)
			sum := m.ProteinG*4 + m.FatG*9 + m.CarbsG*4
			assert.InDelta(t, cals, sum, 2, "goal=%s calories=%d", goal, cals)
		}
	}
}

func TestMacroSplit_CarbsFloorAtZero(t *testing.T) {
	m := MacroSplit(500, 100, Lose)
	assert.Equal(t, 0, m.CarbsG)
	assert.Equal(t, 220, m.ProteinG)
	assert.Equal(t, 90, m.FatG)
}

func TestComputeTargets(t *testing.T) {
	got, ok := ComputeTargets(maleMetrics(), ActivityContext{})
	require.True(t, ok)
	assert.Equal(t, MacroSplit(2556, 70, Maintain), got)
}

func TestComputeTargets_MissingMetrics(t *testing.T) {
	cases := []struct {
		name string
		mut  func(m *BodyMetrics)
	}{
		{"zero weight", func(m *BodyMetrics) { m.WeightKg = 0 }},
		{"zero height", func(m *BodyMetrics) { m.HeightCm = 0 }},
		{"zero age", func(m *BodyMetrics) { m.Age = 0 }},
		{"empty gender", func(m *BodyMetrics) { m.Gender = "" }},
		{"unknown gender", func(m *BodyMetrics) { m.Gender = "robot" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := maleMetrics()
			tc.mut(&m)
			_, ok := ComputeTargets(m, ActivityContext{Level: Active, Goal: Gain})
			assert.False(t, ok)
		})
	}
}

func TestComputeTargets_Idempotent(t *testing.T) {
	ac := ActivityContext{Level: Light, Goal: Lose}
	a, _ := ComputeTargets(maleMetrics(), ac)
	b, _ := ComputeTargets(maleMetrics(), ac)
	assert.Equal(t, a, b)
}

func TestParseEnums(t *testing.T) {
	l, ok := ParseActivityLevel(" Athlete ")
	assert.True(t, ok)
	assert.Equal(t, Athlete, l)

	_, ok = ParseActivityLevel("very_active")
	assert.False(t, ok)

	g, ok := ParseGoal("GAIN")
	assert.True(t, ok)
	assert.Equal(t, Gain, g)

	_, ok = ParseGoal("bulk")
	assert.False(t, ok)

	sex, ok := ParseGender("Female")
	assert.True(t, ok)
	assert.Equal(t, Female, sex)
}
