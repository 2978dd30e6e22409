// Package engine holds the pure energy-balance and training-load models:
// calorie and macro targets, per-session expenditure, daily flux, strain,
// recovery and activity streaks. Nothing here does I/O or keeps state, so
// every function is safe to call concurrently and returns the same output
// for the same input.
package engine

import "strings"

// Gender selects the sex-specific constants in the BMR and strain formulas.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel is the self-reported day-to-day activity used for TDEE.
type ActivityLevel string

const (
	Sedentary ActivityLevel = "sedentary"
	Light     ActivityLevel = "light"
	Moderate  ActivityLevel = "moderate"
	Active    ActivityLevel = "active"
	Athlete   ActivityLevel = "athlete"
)

// Goal shifts the daily target and the protein allowance.
type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

// activityMultipliers maps activity levels to their TDEE multiplier. Also the
// set of valid levels for ParseActivityLevel.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary: 1.2,
	Light:     1.375,
	Moderate:  1.55,
	Active:    1.725,
	Athlete:   1.9,
}

var goalOffsets = map[Goal]float64{
	Lose:     -500,
	Maintain: 0,
	Gain:     500,
}

// proteinPerKg is grams of protein per kg of body weight by goal.
var proteinPerKg = map[Goal]float64{
	Lose:     2.2,
	Maintain: 1.6,
	Gain:     2.0,
}

const fatPerKg = 0.9

// BodyMetrics are the profile fields the energy model needs.
type BodyMetrics struct {
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`
}

// Complete reports whether every field is usable. Callers check this before
// asking for targets; BMR itself does not validate.
func (m BodyMetrics) Complete() bool {
	if m.WeightKg <= 0 || m.HeightCm <= 0 || m.Age <= 0 {
		return false
	}
	_, ok := ParseGender(string(m.Gender))
	return ok
}

// ActivityContext carries the activity level and goal. Zero values mean unset.
type ActivityContext struct {
	Level ActivityLevel `json:"activity_level"`
	Goal  Goal          `json:"goal"`
}

// WithDefaults fills an unset level or goal with moderate/maintain.
func (a ActivityContext) WithDefaults() ActivityContext {
	if a.Level == "" {
		a.Level = Moderate
	}
	if a.Goal == "" {
		a.Goal = Maintain
	}
	return a
}

// EnergyTargets is the daily calorie budget and its macro split in grams.
type EnergyTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day. Anything
// other than Female uses the male constant.
func BMR(m BodyMetrics) float64 {
	bmr := 10*m.WeightKg + 6.25*m.HeightCm - 5*float64(m.Age)
	if m.Gender == Female {
		return bmr - 161
	}
	return bmr + 5
}

// DailyTarget returns round(bmr × multiplier + goal offset). Unknown levels
// use the moderate multiplier and unknown goals add nothing.
func DailyTarget(bmr float64, level ActivityLevel, goal Goal) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[Moderate]
	}
	return roundInt(bmr*mult + goalOffsets[goal])
}

// MacroSplit divides a calorie target protein-first: protein by goal, fat at
// 0.9 g/kg, and the remainder as carbs (never negative).
func MacroSplit(calories int, weightKg float64, goal Goal) EnergyTargets {
	ppk, ok := proteinPerKg[goal]
	if !ok {
		ppk = proteinPerKg[Maintain]
	}
	protein := roundInt(weightKg * ppk)
	fat := roundInt(weightKg * fatPerKg)

	remaining := float64(calories - protein*4 - fat*9)
	carbs := roundInt(remaining / 4)
	if carbs < 0 {
		carbs = 0
	}

	return EnergyTargets{
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	}
}

// ComputeTargets runs BMR, DailyTarget and MacroSplit in sequence.
// Returns ok=false when the metrics are incomplete.
func ComputeTargets(m BodyMetrics, ac ActivityContext) (EnergyTargets, bool) {
	if !m.Complete() {
		return EnergyTargets{}, false
	}
	ac = ac.WithDefaults()
	target := DailyTarget(BMR(m), ac.Level, ac.Goal)
	return MacroSplit(target, m.WeightKg, ac.Goal), true
}

// ParseActivityLevel normalises s and reports whether it names a known level.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	l := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	_, ok := activityMultipliers[l]
	return l, ok
}

// ParseGoal normalises s and reports whether it names a known goal.
func ParseGoal(s string) (Goal, bool) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	_, ok := goalOffsets[g]
	return g, ok
}

// ParseGender normalises s and reports whether it is male or female.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	return g, g == Male || g == Female
}
