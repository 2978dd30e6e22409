package main

import (
	"log"
	"math"
	"time"

	"lg/flux-api/internal/engine"
)

// ageOn returns whole years between dob and now. ok=false for implausible
// ages (DOB in the future, or over 130 years ago).
func ageOn(dob, now time.Time) (int, bool) {
	age := now.Year() - dob.Year()
	if now.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	if age <= 0 || age > 130 {
		return 0, false
	}
	return age, true
}

// engineProfile converts the stored profile into the engine's view of it.
// Unknown enum strings pass through as-is; the engine falls back on them.
func engineProfile(p *userProfile, now time.Time) engine.Profile {
	ep := engine.Profile{
		WeightKg: p.WeightKG,
		HeightCm: p.HeightCM,
	}
	if p.Sex != nil {
		g := engine.Gender(*p.Sex)
		ep.Gender = &g
	}
	if p.DateOfBirth != nil {
		if age, ok := ageOn(p.DateOfBirth.Time, now); ok {
			ep.Age = &age
		}
	}
	if p.ActivityLevel != nil {
		ep.ActivityLevel = engine.ActivityLevel(*p.ActivityLevel)
	}
	if p.Goal != nil {
		ep.Goal = engine.Goal(*p.Goal)
	}
	return ep
}

// populateComputedTargets fills the computed-only fields on p. Leaves them
// nil when the profile is missing any body metric.
func populateComputedTargets(p *userProfile, now time.Time) {
	ep := engineProfile(p, now)
	p.Age = ep.Age

	m, ok := ep.BodyMetrics()
	if !ok {
		return
	}
	bmr := int(math.Round(engine.BMR(m)))
	targets, _ := engine.ComputeTargets(m, ep.ActivityContext())
	p.BMR = &bmr
	p.Targets = &targets
	recordComputation("targets")
}

// strainDefaults layers the profile's age, sex and resting heart rate over
// the configured defaults.
func strainDefaults(p *userProfile, base engine.Defaults, now time.Time) engine.Defaults {
	d := base
	if p == nil {
		return d
	}
	if p.DateOfBirth != nil {
		if age, ok := ageOn(p.DateOfBirth.Time, now); ok {
			d.Age = age
		}
	}
	if p.Sex != nil {
		if g, ok := engine.ParseGender(*p.Sex); ok {
			d.Gender = g
		}
	}
	if p.RestingHR != nil && *p.RestingHR > 0 {
		d.RestingHR = *p.RestingHR
	}
	return d
}

// profileLocation resolves the profile's IANA timezone, defaulting to UTC.
func profileLocation(p *userProfile) *time.Location {
	if p == nil || p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		log.Printf("[profileLocation] bad timezone %q for user %d: %v", p.Timezone, p.UserID, err)
		return time.UTC
	}
	return loc
}
