package engine

import (
	"fmt"
	"math"
)

// Zone classifies the day's net energy balance.
type Zone string

const (
	ZoneDeficit  Zone = "deficit"
	ZoneBalanced Zone = "balanced"
	ZoneSurplus  Zone = "surplus"
)

const (
	// FluxTolerance is the kcal band around zero that still counts as balanced.
	FluxTolerance = 200
	// KcalPerActiveMinute approximates moderate activity when converting a
	// surplus into workout minutes.
	KcalPerActiveMinute = 7
)

// FluxState is the day's energy balance. Balance is
// CaloriesIn − (DailyTarget + CaloriesOut).
type FluxState struct {
	DailyTarget    int    `json:"daily_target"`
	CaloriesIn     int    `json:"calories_in"`
	CaloriesOut    int    `json:"calories_out"`
	Balance        int    `json:"balance"`
	BalancePercent int    `json:"balance_percent"`
	Zone           Zone   `json:"zone"`
	Recommendation string `json:"recommendation"`
}

// AdjustedTarget is the daily target plus calories burned through exercise.
func (f FluxState) AdjustedTarget() int {
	return f.DailyTarget + f.CaloriesOut
}

// ActivityMinutesToOffset is the minutes of moderate activity that would
// spend the current surplus; zero outside the surplus zone.
func (f FluxState) ActivityMinutesToOffset() int {
	if f.Zone != ZoneSurplus {
		return 0
	}
	return int(math.Round(float64(f.Balance) / KcalPerActiveMinute))
}

// ComputeFluxState combines a daily target with the day's intake and
// exercise expenditure. Negative intake or expenditure counts as zero.
func ComputeFluxState(dailyTarget, caloriesIn, caloriesOut int) FluxState {
	if caloriesIn < 0 {
		caloriesIn = 0
	}
	if caloriesOut < 0 {
		caloriesOut = 0
	}

	f := FluxState{
		DailyTarget: dailyTarget,
		CaloriesIn:  caloriesIn,
		CaloriesOut: caloriesOut,
	}
	adjusted := f.AdjustedTarget()
	f.Balance = caloriesIn - adjusted

	if adjusted > 0 {
		pct := int(math.Round(float64(caloriesIn) / float64(adjusted) * 100))
		f.BalancePercent = clampInt(pct, 0, 100)
	}

	switch {
	case f.Balance < -FluxTolerance:
		f.Zone = ZoneDeficit
	case f.Balance > FluxTolerance:
		f.Zone = ZoneSurplus
	default:
		f.Zone = ZoneBalanced
	}
	f.Recommendation = recommend(f)
	return f
}

func recommend(f FluxState) string {
	switch f.Zone {
	case ZoneDeficit:
		return fmt.Sprintf("You are %d kcal below today's target. A protein-rich meal or snack would close the gap.", -f.Balance)
	case ZoneSurplus:
		return fmt.Sprintf("You are %d kcal over today's target. About %d minutes of moderate activity would balance it out.",
			f.Balance, f.ActivityMinutesToOffset())
	default:
		if f.Balance < 0 {
			return fmt.Sprintf("On track: %d kcal left for today.", -f.Balance)
		}
		return fmt.Sprintf("On track: within %d kcal of today's target.", f.Balance)
	}
}
