package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/flux-api/internal/engine"
)

// dayData is everything the flux, dashboard and streak endpoints read for
// one user and one calendar day.
type dayData struct {
	profile  userProfile
	asOf     time.Time // the requested day, at the current wall-clock time if it is today
	foods    []engine.NutritionEntry
	workouts []engine.WorkoutEntry // the day's workouts
	history  []engine.WorkoutEntry // lookback window ending on the day, for streaks
}

// loadDay fetches the profile, the day's logs and the streak window. Writes
// the error response itself and returns ok=false on failure.
func (h *Handler) loadDay(c *gin.Context) (dayData, bool) {
	userID := c.GetInt("user_id")

	p, err := h.store.getProfile(c, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return dayData{}, false
	}
	date, ok := h.dayParam(c, &p)
	if !ok {
		return dayData{}, false
	}

	loc := profileLocation(&p)
	now := h.now().In(loc)
	asOf := now
	if date != now.Format(engine.DayLayout) {
		// Midday avoids DST edges when the day is shifted for the streak window.
		d, _ := time.ParseInLocation(engine.DayLayout, date, loc)
		asOf = d.Add(12 * time.Hour)
	}

	foods, err := h.store.foodItems(c, userID, date)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch food log")
		return dayData{}, false
	}

	start := asOf.AddDate(0, 0, -h.streakLookback).Format(engine.DayLayout)
	history, err := h.store.workouts(c, userID, start, date)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch workouts")
		return dayData{}, false
	}

	d := dayData{
		profile: p,
		asOf:    asOf,
		foods:   nutritionEntries(foods),
		history: workoutEntries(history, loc),
	}
	for _, w := range d.history {
		if w.Date.Format(engine.DayLayout) == date {
			d.workouts = append(d.workouts, w)
		}
	}
	return d, true
}

// getFlux returns the day's energy balance against the profile's target.
// GET /api/flux?date=YYYY-MM-DD. 422 when the profile lacks body metrics.
func (h *Handler) getFlux(c *gin.Context) {
	d, ok := h.loadDay(c)
	if !ok {
		return
	}

	ep := engineProfile(&d.profile, d.asOf)
	m, ok := ep.BodyMetrics()
	if !ok {
		missingMetricsTotal.Inc()
		apiError(c, http.StatusUnprocessableEntity, "missing body metrics: set sex, date_of_birth, height_cm and weight_kg")
		return
	}

	targets, _ := engine.ComputeTargets(m, ep.ActivityContext())
	in := engine.SumNutrition(d.foods).Calories
	out := engine.WorkoutCalories(d.workouts, m.WeightKg)
	flux := engine.ComputeFluxState(targets.Calories, in, out)
	recordFlux(flux)

	c.JSON(http.StatusOK, flux)
}

// getDashboard returns the day's snapshot: targets, nutrition totals, flux
// and streak. Missing body metrics are reported in the body, not as an error.
// GET /api/dashboard?date=YYYY-MM-DD.
func (h *Handler) getDashboard(c *gin.Context) {
	d, ok := h.loadDay(c)
	if !ok {
		return
	}

	s := engine.BuildSnapshot(engineProfile(&d.profile, d.asOf), d.foods, d.workouts, d.history, d.asOf)
	if s.MissingMetrics {
		missingMetricsTotal.Inc()
	}
	if s.Flux != nil {
		recordFlux(*s.Flux)
	}
	recordComputation("streak")

	c.JSON(http.StatusOK, s)
}

// getStreak returns the count of consecutive active days ending today or
// yesterday. GET /api/streak.
func (h *Handler) getStreak(c *gin.Context) {
	d, ok := h.loadDay(c)
	if !ok {
		return
	}

	streak := engine.Streak(engine.WorkoutDates(d.history), d.asOf)
	recordComputation("streak")

	c.JSON(http.StatusOK, gin.H{"streak": streak, "as_of": d.asOf.Format(engine.DayLayout)})
}
