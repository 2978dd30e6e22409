package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// store is everything the handlers need from persistence. Lookups of a
// single row return pgx.ErrNoRows when nothing matches.
type store interface {
	userByUsername(ctx context.Context, username string) (user, error)
	userIDByToken(ctx context.Context, token string) (int, error)

	getProfile(ctx context.Context, userID int) (userProfile, error)
	updateProfile(ctx context.Context, userID int, body patchProfileRequest) (userProfile, error)

	foodItems(ctx context.Context, userID int, date string) ([]foodLogItem, error)
	createFoodItem(ctx context.Context, userID int, body createFoodItemRequest) (foodLogItem, error)
	updateFoodItem(ctx context.Context, userID int, id string, body updateFoodItemRequest) (foodLogItem, error)
	deleteFoodItem(ctx context.Context, userID int, id string) (bool, error)

	workouts(ctx context.Context, userID int, start, end string) ([]workoutLogItem, error)
	createWorkout(ctx context.Context, w workoutLogItem) (workoutLogItem, error)
	deleteWorkout(ctx context.Context, userID int, id string) (bool, error)
}

// pgStore implements store on a pgx pool.
type pgStore struct {
	db *pgxpool.Pool
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

// getDBPool creates a connection pool. A pool rather than a single conn,
// because hosted Postgres closes idle connections after a few minutes.
func getDBPool(url string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse DB URL: %v\n", err)
		os.Exit(1)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// schema migrations.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	log.Println("DB pool ready!")
	return pool
}

/* ─── Users ───────────────────────────────────────────────────────────── */

func (s *pgStore) userByUsername(ctx context.Context, username string) (user, error) {
	return queryOne[user](ctx, s.db,
		"SELECT * FROM users WHERE username = @username",
		pgx.NamedArgs{"username": username})
}

func (s *pgStore) userIDByToken(ctx context.Context, token string) (int, error) {
	var userID int
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE auth_token = $1", token).Scan(&userID)
	return userID, err
}

/* ─── Profiles ────────────────────────────────────────────────────────── */

func (s *pgStore) getProfile(ctx context.Context, userID int) (userProfile, error) {
	return queryOne[userProfile](ctx, s.db,
		"SELECT * FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

// updateProfile writes only the non-nil fields of body. Callers reject an
// empty patch before getting here.
func (s *pgStore) updateProfile(ctx context.Context, userID int, body patchProfileRequest) (userProfile, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}
	set := func(column, name string, value any) {
		setClauses = append(setClauses, column+" = @"+name)
		args[name] = value
	}

	if body.Sex != nil {
		set("sex", "sex", *body.Sex)
	}
	if body.DateOfBirth != nil {
		set("date_of_birth", "dateOfBirth", *body.DateOfBirth)
	}
	if body.HeightCM != nil {
		set("height_cm", "heightCM", *body.HeightCM)
	}
	if body.WeightKG != nil {
		set("weight_kg", "weightKG", *body.WeightKG)
	}
	if body.ActivityLevel != nil {
		set("activity_level", "activityLevel", *body.ActivityLevel)
	}
	if body.Goal != nil {
		set("goal", "goal", *body.Goal)
	}
	if body.RestingHR != nil {
		set("resting_hr", "restingHR", *body.RestingHR)
	}
	if body.Timezone != nil {
		set("timezone", "timezone", *body.Timezone)
	}
	if body.SetupComplete != nil {
		set("setup_complete", "setupComplete", *body.SetupComplete)
	}
	if len(setClauses) == 0 {
		return userProfile{}, fmt.Errorf("update profile: no fields")
	}

	query := "UPDATE user_profiles SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"
	return queryOne[userProfile](ctx, s.db, query, args)
}

/* ─── Food log ────────────────────────────────────────────────────────── */

func (s *pgStore) foodItems(ctx context.Context, userID int, date string) ([]foodLogItem, error) {
	return queryMany[foodLogItem](ctx, s.db,
		`SELECT * FROM food_log_items
		 WHERE user_id = @userID AND date = @date
		 ORDER BY created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
}

func (s *pgStore) createFoodItem(ctx context.Context, userID int, body createFoodItemRequest) (foodLogItem, error) {
	return queryOne[foodLogItem](ctx, s.db,
		`INSERT INTO food_log_items (user_id, date, item_name, meal, calories, protein_g, carbs_g, fat_g)
		 VALUES (@userID, @date, @itemName, @meal, @calories, @proteinG, @carbsG, @fatG)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": body.Date, "itemName": body.ItemName,
			"meal": body.Meal, "calories": body.Calories,
			"proteinG": body.ProteinG, "carbsG": body.CarbsG, "fatG": body.FatG,
		})
}

// updateFoodItem uses COALESCE so omitted fields keep their current value.
func (s *pgStore) updateFoodItem(ctx context.Context, userID int, id string, body updateFoodItemRequest) (foodLogItem, error) {
	return queryOne[foodLogItem](ctx, s.db,
		`UPDATE food_log_items SET
			date = COALESCE(@date, date),
			item_name = COALESCE(@itemName, item_name),
			meal = COALESCE(@meal, meal),
			calories = COALESCE(@calories, calories),
			protein_g = COALESCE(@proteinG, protein_g),
			carbs_g = COALESCE(@carbsG, carbs_g),
			fat_g = COALESCE(@fatG, fat_g)
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"id": id, "userID": userID,
			"date": body.Date, "itemName": body.ItemName, "meal": body.Meal,
			"calories": body.Calories,
			"proteinG": body.ProteinG, "carbsG": body.CarbsG, "fatG": body.FatG,
		})
}

func (s *pgStore) deleteFoodItem(ctx context.Context, userID int, id string) (bool, error) {
	result, err := s.db.Exec(ctx,
		"DELETE FROM food_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		return false, fmt.Errorf("delete food item: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

/* ─── Workout log ─────────────────────────────────────────────────────── */

func (s *pgStore) workouts(ctx context.Context, userID int, start, end string) ([]workoutLogItem, error) {
	return queryMany[workoutLogItem](ctx, s.db,
		`SELECT * FROM workout_log_items
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC, created_at ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
}

func (s *pgStore) createWorkout(ctx context.Context, w workoutLogItem) (workoutLogItem, error) {
	return queryOne[workoutLogItem](ctx, s.db,
		`INSERT INTO workout_log_items (user_id, date, activity_type, duration_mins, distance_km, avg_hr, calories)
		 VALUES (@userID, @date, @activityType, @durationMins, @distanceKM, @avgHR, @calories)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": w.UserID, "date": w.Date.Format("2006-01-02"),
			"activityType": w.ActivityType, "durationMins": w.DurationMins,
			"distanceKM": w.DistanceKM, "avgHR": w.AvgHR, "calories": w.Calories,
		})
}

func (s *pgStore) deleteWorkout(ctx context.Context, userID int, id string) (bool, error) {
	result, err := s.db.Exec(ctx,
		"DELETE FROM workout_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		return false, fmt.Errorf("delete workout: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
