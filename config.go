package main

import (
	"os"
	"strconv"
	"strings"

	"lg/flux-api/internal/engine"
)

// Config captures runtime configuration read from the environment (and .env).
type Config struct {
	HTTPAddress        string
	DBURL              string
	CORSOrigins        []string
	StreakLookbackDays int
	Defaults           engine.Defaults
}

// loadConfig reads environment variables into Config, with local-dev defaults.
// Engine defaults start from engine.DefaultDefaults and can be overridden
// one value at a time.
func loadConfig() Config {
	d := engine.DefaultDefaults()
	d.Age = getIntEnv("DEFAULT_AGE", d.Age)
	d.RestingHR = getFloatEnv("DEFAULT_RESTING_HR", d.RestingHR)
	d.DefaultIntensity = getFloatEnv("DEFAULT_STRAIN_INTENSITY", d.DefaultIntensity)
	if g, ok := engine.ParseGender(getEnv("DEFAULT_GENDER", string(d.Gender))); ok {
		d.Gender = g
	}

	return Config{
		HTTPAddress:        getEnv("HTTP_ADDRESS", "localhost:3000"),
		DBURL:              getEnv("DB_URL", ""),
		CORSOrigins:        splitAndTrim(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StreakLookbackDays: getIntEnv("STREAK_LOOKBACK_DAYS", 400),
		Defaults:           d,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
