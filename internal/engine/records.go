package engine

import "time"

// Profile is the user's profile as supplied by the profile store. Any body
// field may be missing.
type Profile struct {
	WeightKg      *float64      `json:"weight_kg"`
	HeightCm      *float64      `json:"height_cm"`
	Age           *int          `json:"age"`
	Gender        *Gender       `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// BodyMetrics extracts the metrics, reporting false when any field is absent
// or unusable.
func (p Profile) BodyMetrics() (BodyMetrics, bool) {
	if p.WeightKg == nil || p.HeightCm == nil || p.Age == nil || p.Gender == nil {
		return BodyMetrics{}, false
	}
	m := BodyMetrics{
		WeightKg: *p.WeightKg,
		HeightCm: *p.HeightCm,
		Age:      *p.Age,
		Gender:   *p.Gender,
	}
	return m, m.Complete()
}

// ActivityContext returns the profile's level and goal with defaults applied.
func (p Profile) ActivityContext() ActivityContext {
	return ActivityContext{Level: p.ActivityLevel, Goal: p.Goal}.WithDefaults()
}

// Macros are grams of each macronutrient.
type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// NutritionEntry is one food log row.
type NutritionEntry struct {
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
}

// NutritionTotals is the sum of a day's nutrition entries.
type NutritionTotals struct {
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
}

// SumNutrition totals calories and macros across entries.
func SumNutrition(entries []NutritionEntry) NutritionTotals {
	var t NutritionTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Macros.ProteinG += e.Macros.ProteinG
		t.Macros.CarbsG += e.Macros.CarbsG
		t.Macros.FatG += e.Macros.FatG
	}
	return t
}

// WorkoutEntry is one workout log row. Calories, when positive, is a value
// recorded by the user or a device and is used instead of the estimate.
type WorkoutEntry struct {
	ActivitySample
	Calories int       `json:"calories,omitempty"`
	Date     time.Time `json:"date"`
}

// Burned returns the recorded calories, or the MET estimate for weightKg.
func (w WorkoutEntry) Burned(weightKg float64) int {
	if w.Calories > 0 {
		return w.Calories
	}
	return w.ActivitySample.Calories(weightKg)
}

// WorkoutCalories sums Burned across entries.
func WorkoutCalories(entries []WorkoutEntry, weightKg float64) int {
	total := 0
	for _, w := range entries {
		total += w.Burned(weightKg)
	}
	return total
}

// WorkoutDates returns each entry's date, for Streak.
func WorkoutDates(entries []WorkoutEntry) []time.Time {
	dates := make([]time.Time, len(entries))
	for i, w := range entries {
		dates[i] = w.Date
	}
	return dates
}

// Snapshot is the dashboard view of one day.
type Snapshot struct {
	Date           string          `json:"date"`
	MissingMetrics bool            `json:"missing_metrics"`
	Targets        *EnergyTargets  `json:"targets,omitempty"`
	Nutrition      NutritionTotals `json:"nutrition"`
	CaloriesOut    int             `json:"calories_out"`
	Flux           *FluxState      `json:"flux,omitempty"`
	Streak         int             `json:"streak"`
}

// BuildSnapshot assembles the dashboard for now's calendar day. foods and
// dayWorkouts are that day's rows; history is the workout history used for
// the streak. Without complete body metrics there are no targets or flux,
// and workouts without recorded calories count as zero.
func BuildSnapshot(p Profile, foods []NutritionEntry, dayWorkouts, history []WorkoutEntry, now time.Time) Snapshot {
	s := Snapshot{
		Date:      now.Format(DayLayout),
		Nutrition: SumNutrition(foods),
		Streak:    Streak(WorkoutDates(history), now),
	}

	m, ok := p.BodyMetrics()
	if !ok {
		s.MissingMetrics = true
		s.CaloriesOut = WorkoutCalories(dayWorkouts, 0)
		return s
	}

	targets, _ := ComputeTargets(m, p.ActivityContext())
	s.Targets = &targets
	s.CaloriesOut = WorkoutCalories(dayWorkouts, m.WeightKg)
	flux := ComputeFluxState(targets.Calories, s.Nutrition.Calories, s.CaloriesOut)
	s.Flux = &flux
	return s
}
