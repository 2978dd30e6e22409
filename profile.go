package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/flux-api/internal/engine"
)

// getProfile returns the authenticated user's profile. Age, BMR and energy
// targets are filled in when every body metric is present.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := h.store.getProfile(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}

	populateComputedTargets(&p, h.now())
	c.JSON(http.StatusOK, p)
}

// profileOrEmpty fetches the caller's profile for handlers that can work
// without one. A missing profile comes back empty; any other store error
// writes a 500 and returns ok=false.
func (h *Handler) profileOrEmpty(c *gin.Context, caller string) (userProfile, bool) {
	userID := c.GetInt("user_id")
	p, err := h.store.getProfile(c, userID)
	if err == nil {
		return p, true
	}
	if errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[%s] no profile for user %d, using defaults", caller, userID)
		return userProfile{UserID: userID}, true
	}
	log.Printf("[%s] profile lookup failed for user %d: %v", caller, userID, err)
	apiError(c, http.StatusInternalServerError, "failed to fetch profile")
	return userProfile{}, false
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Enum fields are validated here so bad values never
// reach storage; the engine itself would silently fall back on them.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfilePatch(&body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body == (patchProfileRequest{}) {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	p, err := h.store.updateProfile(c, userID, body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	populateComputedTargets(&p, h.now())
	c.JSON(http.StatusOK, p)
}

// validateProfilePatch normalises enum fields in place and returns an error
// message for the first invalid field, or "" when the patch is acceptable.
func validateProfilePatch(body *patchProfileRequest) string {
	if body.Sex != nil {
		g, ok := engine.ParseGender(*body.Sex)
		if !ok {
			return "sex must be one of: male, female"
		}
		s := string(g)
		body.Sex = &s
	}
	if body.ActivityLevel != nil {
		l, ok := engine.ParseActivityLevel(*body.ActivityLevel)
		if !ok {
			return "activity_level must be one of: sedentary, light, moderate, active, athlete"
		}
		s := string(l)
		body.ActivityLevel = &s
	}
	if body.Goal != nil {
		g, ok := engine.ParseGoal(*body.Goal)
		if !ok {
			return "goal must be one of: lose, maintain, gain"
		}
		s := string(g)
		body.Goal = &s
	}
	if body.DateOfBirth != nil {
		if _, err := time.Parse(engine.DayLayout, *body.DateOfBirth); err != nil {
			return "invalid date_of_birth, expected YYYY-MM-DD"
		}
	}
	if body.HeightCM != nil && (*body.HeightCM <= 0 || *body.HeightCM > 300) {
		return "height_cm must be between 0 and 300"
	}
	if body.WeightKG != nil && (*body.WeightKG <= 0 || *body.WeightKG > 700) {
		return "weight_kg must be between 0 and 700"
	}
	if body.RestingHR != nil && (*body.RestingHR <= 0 || *body.RestingHR > 250) {
		return "resting_hr must be between 0 and 250"
	}
	if body.Timezone != nil {
		if _, err := time.LoadLocation(*body.Timezone); err != nil {
			return "timezone must be an IANA zone name"
		}
	}
	return ""
}
