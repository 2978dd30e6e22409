package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/flux-api/internal/engine"
)

// postStrain scores a single workout without storing it.
// POST /api/strain. The impulse variant takes age, sex and resting heart rate
// from the profile when present, otherwise from the configured defaults.
func (h *Handler) postStrain(c *gin.Context) {
	var body strainRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.DurationMins < 0 || body.DurationMins > maxDurationMins {
		apiError(c, http.StatusBadRequest, "duration_mins must be between 0 and 1440")
		return
	}
	if body.AvgHR != nil && !validHeartRate(*body.AvgHR) {
		apiError(c, http.StatusBadRequest, "avg_hr must be between 0 and 250")
		return
	}

	variant := body.Variant
	if variant == "" {
		variant = "impulse"
		if body.Intensity != nil {
			variant = "load"
		}
	}

	switch variant {
	case "impulse":
		p, ok := h.profileOrEmpty(c, "postStrain")
		if !ok {
			return
		}
		in := engine.ImpulseInput{DurationMins: body.DurationMins}
		if body.AvgHR != nil {
			in.AvgHR = *body.AvgHR
		}
		strain := engine.StrainFromImpulse(in, strainDefaults(&p, h.defaults, h.now()))
		recordComputation("strain_impulse")
		c.JSON(http.StatusOK, gin.H{"variant": variant, "strain": strain})

	case "load":
		if body.Intensity == nil || *body.Intensity < 1 || *body.Intensity > 10 {
			apiError(c, http.StatusBadRequest, "intensity must be between 1 and 10")
			return
		}
		strain := engine.StrainFromDurationIntensity(body.DurationMins, *body.Intensity)
		recordComputation("strain_load")
		c.JSON(http.StatusOK, gin.H{"variant": variant, "strain": strain})

	default:
		apiError(c, http.StatusBadRequest, "variant must be one of: impulse, load")
	}
}

// postRecovery scores readiness from either baseline-relative HRV/RHR or a
// sleep/heart-rate/energy check-in.
// POST /api/recovery.
func (h *Handler) postRecovery(c *gin.Context) {
	var body recoveryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	variant := body.Variant
	if variant == "" {
		variant = "baseline"
		if body.SleepHours != nil {
			variant = "composite"
		}
	}

	switch variant {
	case "baseline":
		if body.HRV == nil || body.RestingHR == nil {
			apiError(c, http.StatusBadRequest, "hrv and resting_hr are required")
			return
		}
		if msg := validateBaselineRecovery(&body); msg != "" {
			apiError(c, http.StatusBadRequest, msg)
			return
		}
		in := engine.BaselineInput{HRV: *body.HRV, RestingHR: *body.RestingHR}
		if body.BaselineHRV != nil {
			in.BaselineHRV = *body.BaselineHRV
		}
		if body.BaselineRHR != nil {
			in.BaselineRHR = *body.BaselineRHR
		}
		recordComputation("recovery_baseline")
		c.JSON(http.StatusOK, gin.H{"variant": variant, "recovery": engine.RecoveryFromBaseline(in)})

	case "composite":
		if body.SleepHours == nil || body.RestingHR == nil || body.Energy == nil {
			apiError(c, http.StatusBadRequest, "sleep_hours, resting_hr and energy are required")
			return
		}
		if *body.SleepHours < 0 || *body.SleepHours > 24 {
			apiError(c, http.StatusBadRequest, "sleep_hours must be between 0 and 24")
			return
		}
		if !validHeartRate(*body.RestingHR) {
			apiError(c, http.StatusBadRequest, "resting_hr must be between 0 and 250")
			return
		}
		if *body.Energy < 1 || *body.Energy > 10 {
			apiError(c, http.StatusBadRequest, "energy must be between 1 and 10")
			return
		}
		in := engine.CompositeInput{
			SleepHours:  *body.SleepHours,
			RestingHR:   *body.RestingHR,
			EnergyLevel: *body.Energy,
		}
		recordComputation("recovery_composite")
		c.JSON(http.StatusOK, gin.H{"variant": variant, "recovery": engine.RecoveryComposite(in)})

	default:
		apiError(c, http.StatusBadRequest, "variant must be one of: baseline, composite")
	}
}

const (
	maxDurationMins = 1440
	maxHeartRate    = 250
	maxHRV          = 500
)

// validHeartRate reports whether bpm is a plausible heart rate.
func validHeartRate(bpm float64) bool {
	return bpm > 0 && bpm <= maxHeartRate
}

// validateBaselineRecovery returns a message for the first out-of-range
// reading. Baselines may be zero, which means no history yet.
func validateBaselineRecovery(body *recoveryRequest) string {
	if *body.HRV <= 0 || *body.HRV > maxHRV {
		return "hrv must be between 0 and 500"
	}
	if !validHeartRate(*body.RestingHR) {
		return "resting_hr must be between 0 and 250"
	}
	if body.BaselineHRV != nil && (*body.BaselineHRV < 0 || *body.BaselineHRV > maxHRV) {
		return "baseline_hrv must be between 0 and 500"
	}
	if body.BaselineRHR != nil && (*body.BaselineRHR < 0 || *body.BaselineRHR > maxHeartRate) {
		return "baseline_rhr must be between 0 and 250"
	}
	return ""
}
