package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lg/flux-api/internal/engine"
)

// workoutEntries converts stored workouts into engine entries dated in loc.
func workoutEntries(items []workoutLogItem, loc *time.Location) []engine.WorkoutEntry {
	entries := make([]engine.WorkoutEntry, len(items))
	for i, w := range items {
		e := engine.WorkoutEntry{
			ActivitySample: engine.ActivitySample{
				Label:        w.ActivityType,
				DurationMins: w.DurationMins,
			},
			Calories: w.Calories,
			Date:     w.Date.DayIn(loc),
		}
		if w.DistanceKM != nil {
			e.DistanceKm = *w.DistanceKM
		}
		entries[i] = e
	}
	return entries
}

// populateStrain sets the impulse-based strain on each workout.
func populateStrain(items []workoutLogItem, d engine.Defaults) {
	for i := range items {
		in := engine.ImpulseInput{DurationMins: items[i].DurationMins}
		if items[i].AvgHR != nil {
			in.AvgHR = *items[i].AvgHR
		}
		s := engine.StrainFromImpulse(in, d)
		items[i].Strain = &s
	}
}

// getWorkouts returns workouts within [start, end], each with its strain.
// GET /api/workouts?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
func (h *Handler) getWorkouts(c *gin.Context) {
	userID := c.GetInt("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if _, err := time.Parse(engine.DayLayout, start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse(engine.DayLayout, end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	items, err := h.store.workouts(c, userID, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch workouts")
		return
	}
	// Ensure empty array (not null) in JSON
	if items == nil {
		items = []workoutLogItem{}
	}

	p, ok := h.profileOrEmpty(c, "getWorkouts")
	if !ok {
		return
	}
	populateStrain(items, strainDefaults(&p, h.defaults, h.now()))

	c.JSON(http.StatusOK, items)
}

// createWorkout logs a workout. When calories are omitted they are estimated
// from the activity, duration, distance and the profile's weight; without a
// weight the estimate is 0.
// POST /api/workouts.
func (h *Handler) createWorkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createWorkoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ActivityType == "" {
		apiError(c, http.StatusBadRequest, "activity_type is required")
		return
	}
	if body.DurationMins <= 0 || body.DurationMins > maxDurationMins {
		apiError(c, http.StatusBadRequest, "duration_mins must be between 0 and 1440")
		return
	}
	if body.DistanceKM != nil && *body.DistanceKM < 0 {
		apiError(c, http.StatusBadRequest, "distance_km must not be negative")
		return
	}
	if body.Calories != nil && *body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if body.AvgHR != nil && !validHeartRate(*body.AvgHR) {
		apiError(c, http.StatusBadRequest, "avg_hr must be between 0 and 250")
		return
	}

	p, ok := h.profileOrEmpty(c, "createWorkout")
	if !ok {
		return
	}
	now := h.now()
	loc := profileLocation(&p)

	date := now.In(loc)
	if body.Date != "" {
		parsed, err := time.ParseInLocation(engine.DayLayout, body.Date, loc)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	w := workoutLogItem{
		UserID:       userID,
		Date:         DateOnly{date},
		ActivityType: body.ActivityType,
		DurationMins: body.DurationMins,
		DistanceKM:   body.DistanceKM,
		AvgHR:        body.AvgHR,
	}
	if body.Calories != nil {
		w.Calories = *body.Calories
	} else if p.WeightKG != nil {
		sample := engine.ActivitySample{Label: w.ActivityType, DurationMins: w.DurationMins}
		if w.DistanceKM != nil {
			sample.DistanceKm = *w.DistanceKM
		}
		w.Calories = sample.Calories(*p.WeightKG)
		recordComputation("calories_burned")
	}

	created, err := h.store.createWorkout(c, w)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create workout")
		return
	}
	items := []workoutLogItem{created}
	populateStrain(items, strainDefaults(&p, h.defaults, now))

	c.JSON(http.StatusCreated, items[0])
}

// deleteWorkout removes a workout by ID.
// DELETE /api/workouts/:id. Returns 204 on success, 404 if not found.
func (h *Handler) deleteWorkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	found, err := h.store.deleteWorkout(c, userID, c.Param("id"))
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete workout")
		return
	}
	if !found {
		apiError(c, http.StatusNotFound, "workout not found")
		return
	}

	c.Status(http.StatusNoContent)
}
