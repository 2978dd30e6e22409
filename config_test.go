package main

import (
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"lg/flux-api/internal/engine"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDRESS", "DB_URL", "CORS_ORIGINS", "STREAK_LOOKBACK_DAYS",
		"DEFAULT_AGE", "DEFAULT_RESTING_HR", "DEFAULT_STRAIN_INTENSITY", "DEFAULT_GENDER"} {
		t.Setenv(k, "")
	}

	cfg := loadConfig()
	if cfg.HTTPAddress != "localhost:3000" || cfg.StreakLookbackDays != 400 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Defaults != engine.DefaultDefaults() {
		t.Errorf("defaults = %+v, want %+v", cfg.Defaults, engine.DefaultDefaults())
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("STREAK_LOOKBACK_DAYS", "90")
	t.Setenv("DEFAULT_AGE", "41")
	t.Setenv("DEFAULT_RESTING_HR", "not-a-number")
	t.Setenv("DEFAULT_GENDER", "Female")

	cfg := loadConfig()
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("origins = %v, want %v", cfg.CORSOrigins, want)
	}
	if cfg.StreakLookbackDays != 90 {
		t.Errorf("lookback = %d, want 90", cfg.StreakLookbackDays)
	}
	if cfg.Defaults.Age != 41 || cfg.Defaults.Gender != engine.Female {
		t.Errorf("defaults = %+v, want age 41 female", cfg.Defaults)
	}
	if cfg.Defaults.RestingHR != 60 {
		t.Errorf("unparseable resting HR should keep 60, got %v", cfg.Defaults.RestingHR)
	}
}

func TestRecordFlux(t *testing.T) {
	zone := fluxZoneTotal.WithLabelValues(string(engine.ZoneSurplus))
	flux := computationsTotal.WithLabelValues("flux")
	beforeZone, beforeFlux := testutil.ToFloat64(zone), testutil.ToFloat64(flux)

	recordFlux(engine.ComputeFluxState(2000, 2500, 0))

	if got := testutil.ToFloat64(zone) - beforeZone; got != 1 {
		t.Errorf("surplus counter moved by %v, want 1", got)
	}
	if got := testutil.ToFloat64(flux) - beforeFlux; got != 1 {
		t.Errorf("flux computations moved by %v, want 1", got)
	}
}
