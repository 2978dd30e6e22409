package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/flux-api/internal/engine"
)

// validMeals is the set of allowed values for the meal column.
// Reject unknown values with 400 rather than letting the DB return a cryptic 500.
var validMeals = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// nutritionEntries converts stored food rows into engine entries.
func nutritionEntries(items []foodLogItem) []engine.NutritionEntry {
	entries := make([]engine.NutritionEntry, len(items))
	for i, item := range items {
		e := engine.NutritionEntry{Calories: item.Calories}
		if item.ProteinG != nil {
			e.Macros.ProteinG = *item.ProteinG
		}
		if item.CarbsG != nil {
			e.Macros.CarbsG = *item.CarbsG
		}
		if item.FatG != nil {
			e.Macros.FatG = *item.FatG
		}
		entries[i] = e
	}
	return entries
}

// getFoodDay returns the day's food items and their totals.
// GET /api/food-log?date=YYYY-MM-DD (defaults to today in the profile's timezone).
func (h *Handler) getFoodDay(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, ok := h.profileOrEmpty(c, "getFoodDay")
	if !ok {
		return
	}
	date, ok := h.dayParam(c, &p)
	if !ok {
		return
	}

	items, err := h.store.foodItems(c, userID, date)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch food log")
		return
	}
	// Ensure items is an empty array (not null) in JSON
	if items == nil {
		items = []foodLogItem{}
	}

	c.JSON(http.StatusOK, foodDay{
		Date:   date,
		Totals: engine.SumNutrition(nutritionEntries(items)),
		Items:  items,
	})
}

// createFoodItem inserts a food log entry.
// POST /api/food-log. Defaults date to today if omitted.
func (h *Handler) createFoodItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createFoodItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ItemName == "" {
		apiError(c, http.StatusBadRequest, "item_name is required")
		return
	}
	if !validMeals[body.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if body.Date == "" {
		p, ok := h.profileOrEmpty(c, "createFoodItem")
		if !ok {
			return
		}
		body.Date = h.now().In(profileLocation(&p)).Format(engine.DayLayout)
	} else if _, err := time.Parse(engine.DayLayout, body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	item, err := h.store.createFoodItem(c, userID, body)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// updateFoodItem edits a food log entry in place.
// PUT /api/food-log/:id. Omitted fields keep their current value.
func (h *Handler) updateFoodItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body updateFoodItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body == (updateFoodItemRequest{}) {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	if body.ItemName != nil && *body.ItemName == "" {
		apiError(c, http.StatusBadRequest, "item_name must not be empty")
		return
	}
	if body.Meal != nil && !validMeals[*body.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if body.Calories != nil && *body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if body.Date != nil {
		if _, err := time.Parse(engine.DayLayout, *body.Date); err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}

	item, err := h.store.updateFoodItem(c, userID, c.Param("id"), body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "item not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// deleteFoodItem removes a food log entry. Returns 204 on success.
// DELETE /api/food-log/:id.
func (h *Handler) deleteFoodItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	found, err := h.store.deleteFoodItem(c, userID, c.Param("id"))
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if !found {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// dayParam reads ?date=, defaulting to today in the profile's timezone.
// Writes a 400 and returns ok=false when the value is malformed.
func (h *Handler) dayParam(c *gin.Context, p *userProfile) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return h.now().In(profileLocation(p)).Format(engine.DayLayout), true
	}
	// Validate before querying; an invalid value silently returns no rows.
	if _, err := time.Parse(engine.DayLayout, date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}
