package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lg/flux-api/internal/engine"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	store          store
	defaults       engine.Defaults
	streakLookback int              // days of workout history scanned for streaks
	now            func() time.Time // overridable for tests
}

// newHandler wires a Handler from config.
func newHandler(s store, cfg Config) *Handler {
	return &Handler{
		store:          s,
		defaults:       cfg.Defaults,
		streakLookback: cfg.StreakLookbackDays,
		now:            time.Now,
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/login", h.login)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/food-log", h.getFoodDay)
	api.POST("/food-log", h.createFoodItem)
	api.PUT("/food-log/:id", h.updateFoodItem)
	api.DELETE("/food-log/:id", h.deleteFoodItem)
	api.GET("/workouts", h.getWorkouts)
	api.POST("/workouts", h.createWorkout)
	api.DELETE("/workouts/:id", h.deleteWorkout)
	api.GET("/flux", h.getFlux)
	api.GET("/dashboard", h.getDashboard)
	api.GET("/streak", h.getStreak)
	api.POST("/strain", h.postStrain)
	api.POST("/recovery", h.postRecovery)
}
