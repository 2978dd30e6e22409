package main

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory store for handler tests. Not-found lookups return
// pgx.ErrNoRows like pgStore does.
type memStore struct {
	mu           sync.Mutex
	users        map[string]user
	profiles     map[int]userProfile
	foods        []foodLogItem
	workoutItems []workoutLogItem
	nextID       int
	fail         bool // every log query fails when set

	profileErr error // returned by getProfile when set
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]user{},
		profiles: map[int]userProfile{},
	}
}

var errStoreDown = errors.New("store unavailable")

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) userByUsername(_ context.Context, username string) (user, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return user{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memStore) userIDByToken(_ context.Context, token string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.AuthToken == token {
			return u.ID, nil
		}
	}
	return 0, pgx.ErrNoRows
}

func (m *memStore) getProfile(_ context.Context, userID int) (userProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profileErr != nil {
		return userProfile{}, m.profileErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return userProfile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *memStore) updateProfile(_ context.Context, userID int, body patchProfileRequest) (userProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return userProfile{}, pgx.ErrNoRows
	}
	if body.Sex != nil {
		p.Sex = body.Sex
	}
	if body.DateOfBirth != nil {
		t, _ := time.Parse("2006-01-02", *body.DateOfBirth)
		p.DateOfBirth = &DateOnly{t}
	}
	if body.HeightCM != nil {
		p.HeightCM = body.HeightCM
	}
	if body.WeightKG != nil {
		p.WeightKG = body.WeightKG
	}
	if body.ActivityLevel != nil {
		p.ActivityLevel = body.ActivityLevel
	}
	if body.Goal != nil {
		p.Goal = body.Goal
	}
	if body.RestingHR != nil {
		p.RestingHR = body.RestingHR
	}
	if body.Timezone != nil {
		p.Timezone = *body.Timezone
	}
	if body.SetupComplete != nil {
		p.SetupComplete = *body.SetupComplete
	}
	m.profiles[userID] = p
	return p, nil
}

func (m *memStore) foodItems(_ context.Context, userID int, date string) ([]foodLogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	var out []foodLogItem
	for _, f := range m.foods {
		if f.UserID == userID && f.Date.Format("2006-01-02") == date {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) createFoodItem(_ context.Context, userID int, body createFoodItemRequest) (foodLogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return foodLogItem{}, errStoreDown
	}
	d, _ := time.Parse("2006-01-02", body.Date)
	item := foodLogItem{
		ID: m.id(), UserID: userID, Date: DateOnly{d},
		ItemName: body.ItemName, Meal: body.Meal, Calories: body.Calories,
		ProteinG: body.ProteinG, CarbsG: body.CarbsG, FatG: body.FatG,
	}
	m.foods = append(m.foods, item)
	return item, nil
}

func (m *memStore) updateFoodItem(_ context.Context, userID int, id string, body updateFoodItemRequest) (foodLogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return foodLogItem{}, errStoreDown
	}
	for i, f := range m.foods {
		if strconv.Itoa(f.ID) != id || f.UserID != userID {
			continue
		}
		if body.Date != nil {
			d, _ := time.Parse("2006-01-02", *body.Date)
			f.Date = DateOnly{d}
		}
		if body.ItemName != nil {
			f.ItemName = *body.ItemName
		}
		if body.Meal != nil {
			f.Meal = *body.Meal
		}
		if body.Calories != nil {
			f.Calories = *body.Calories
		}
		if body.ProteinG != nil {
			f.ProteinG = body.ProteinG
		}
		if body.CarbsG != nil {
			f.CarbsG = body.CarbsG
		}
		if body.FatG != nil {
			f.FatG = body.FatG
		}
		m.foods[i] = f
		return f, nil
	}
	return foodLogItem{}, pgx.ErrNoRows
}

func (m *memStore) deleteFoodItem(_ context.Context, userID int, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.foods {
		if strconv.Itoa(f.ID) == id && f.UserID == userID {
			m.foods = append(m.foods[:i], m.foods[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) workouts(_ context.Context, userID int, start, end string) ([]workoutLogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	var out []workoutLogItem
	for _, w := range m.workoutItems {
		day := w.Date.Format("2006-01-02")
		if w.UserID == userID && day >= start && day <= end {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memStore) createWorkout(_ context.Context, w workoutLogItem) (workoutLogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return workoutLogItem{}, errStoreDown
	}
	w.ID = m.id()
	// Mirror the date column: only the calendar day survives.
	w.Date = DateOnly{time.Date(w.Date.Year(), w.Date.Month(), w.Date.Day(), 0, 0, 0, 0, time.UTC)}
	m.workoutItems = append(m.workoutItems, w)
	return w, nil
}

func (m *memStore) deleteWorkout(_ context.Context, userID int, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, w := range m.workoutItems {
		if strconv.Itoa(w.ID) == id && w.UserID == userID {
			m.workoutItems = append(m.workoutItems[:i], m.workoutItems[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// addWorkout seeds a workout n days before fixedNow.
func (m *memStore) addWorkout(userID, daysAgo int, activity string, mins float64, calories int) {
	d := fixedNow.AddDate(0, 0, -daysAgo)
	m.workoutItems = append(m.workoutItems, workoutLogItem{
		ID: m.id(), UserID: userID,
		Date:         DateOnly{time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)},
		ActivityType: activity, DurationMins: mins, Calories: calories,
	})
}

// addFood seeds a food item on fixedNow's day.
func (m *memStore) addFood(userID, calories int) {
	m.foods = append(m.foods, foodLogItem{
		ID: m.id(), UserID: userID,
		Date:     DateOnly{time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)},
		ItemName: "seed", Meal: "lunch", Calories: calories,
	})
}
