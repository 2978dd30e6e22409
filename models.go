package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/flux-api/internal/engine"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(engine.DayLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+engine.DayLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns into DateOnly. NULL zeroes the time so *DateOnly fields end up nil.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

// DayIn returns midnight of the same calendar day in loc. Date columns come back
// as UTC midnight, which would land on the previous day west of Greenwich.
func (d DateOnly) DayIn(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// userProfile maps to user_profiles. Every body field is nullable; a
// half-filled profile still loads, it just has no targets.
type userProfile struct {
	UserID        int       `json:"user_id"        db:"user_id"`
	Sex           *string   `json:"sex"            db:"sex"`
	DateOfBirth   *DateOnly `json:"date_of_birth"  db:"date_of_birth"`
	HeightCM      *float64  `json:"height_cm"      db:"height_cm"`
	WeightKG      *float64  `json:"weight_kg"      db:"weight_kg"`
	ActivityLevel *string   `json:"activity_level" db:"activity_level"`
	Goal          *string   `json:"goal"           db:"goal"`
	RestingHR     *float64  `json:"resting_hr"     db:"resting_hr"`
	Timezone      string    `json:"timezone"       db:"timezone"`
	SetupComplete bool      `json:"setup_complete" db:"setup_complete"`

	// Computed fields, never stored.
	Age     *int                  `json:"age,omitempty"     db:"-"`
	BMR     *int                  `json:"bmr,omitempty"     db:"-"`
	Targets *engine.EnergyTargets `json:"targets,omitempty" db:"-"`
}

// foodLogItem maps to food_log_items.
type foodLogItem struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	ItemName  string     `json:"item_name"  db:"item_name"`
	Meal      string     `json:"meal"       db:"meal"`
	Calories  int        `json:"calories"   db:"calories"`
	ProteinG  *float64   `json:"protein_g"  db:"protein_g"`
	CarbsG    *float64   `json:"carbs_g"    db:"carbs_g"`
	FatG      *float64   `json:"fat_g"      db:"fat_g"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// workoutLogItem maps to workout_log_items. Calories is whatever was stored
// at insert time: either supplied by the client or estimated from METs.
type workoutLogItem struct {
	ID           int        `json:"id"            db:"id"`
	UserID       int        `json:"user_id"       db:"user_id"`
	Date         DateOnly   `json:"date"          db:"date"`
	ActivityType string     `json:"activity_type" db:"activity_type"`
	DurationMins float64    `json:"duration_mins" db:"duration_mins"`
	DistanceKM   *float64   `json:"distance_km"   db:"distance_km"`
	AvgHR        *float64   `json:"avg_hr"        db:"avg_hr"`
	Calories     int        `json:"calories"      db:"calories"`
	CreatedAt    *time.Time `json:"created_at"    db:"created_at"`

	Strain *int `json:"strain,omitempty" db:"-"`
}

// foodDay is the response shape for GET /api/food-log.
type foodDay struct {
	Date   string                 `json:"date"`
	Totals engine.NutritionTotals `json:"totals"`
	Items  []foodLogItem          `json:"items"`
}

// createFoodItemRequest is the request body for POST /api/food-log.
type createFoodItemRequest struct {
	Date     string   `json:"date"`
	ItemName string   `json:"item_name"`
	Meal     string   `json:"meal"`
	Calories int      `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// updateFoodItemRequest is the request body for PUT /api/food-log/:id.
// Nil fields keep their stored value.
type updateFoodItemRequest struct {
	Date     *string  `json:"date"`
	ItemName *string  `json:"item_name"`
	Meal     *string  `json:"meal"`
	Calories *int     `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// createWorkoutRequest is the request body for POST /api/workouts.
// Calories is optional; when omitted it is estimated from the profile weight.
type createWorkoutRequest struct {
	Date         string   `json:"date"`
	ActivityType string   `json:"activity_type"`
	DurationMins float64  `json:"duration_mins"`
	DistanceKM   *float64 `json:"distance_km"`
	AvgHR        *float64 `json:"avg_hr"`
	Calories     *int     `json:"calories"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields get written.
type patchProfileRequest struct {
	Sex           *string  `json:"sex"`
	DateOfBirth   *string  `json:"date_of_birth"` // YYYY-MM-DD
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
	RestingHR     *float64 `json:"resting_hr"`
	Timezone      *string  `json:"timezone"`
	SetupComplete *bool    `json:"setup_complete"`
}

// strainRequest is the body for POST /api/strain. Variant is "impulse" or
// "load"; when empty, a supplied intensity selects "load".
type strainRequest struct {
	Variant      string   `json:"variant"`
	DurationMins float64  `json:"duration_mins"`
	AvgHR        *float64 `json:"avg_hr"`
	Intensity    *float64 `json:"intensity"`
}

// recoveryRequest is the body for POST /api/recovery. Variant is "baseline"
// or "composite"; when empty, a supplied sleep_hours selects "composite".
type recoveryRequest struct {
	Variant     string   `json:"variant"`
	HRV         *float64 `json:"hrv"`
	BaselineHRV *float64 `json:"baseline_hrv"`
	RestingHR   *float64 `json:"resting_hr"`
	BaselineRHR *float64 `json:"baseline_rhr"`
	SleepHours  *float64 `json:"sleep_hours"`
	Energy      *float64 `json:"energy"`
}
