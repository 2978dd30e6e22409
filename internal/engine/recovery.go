package engine

// NeutralRecovery is returned when there is no baseline to compare against.
const NeutralRecovery = 50

// BaselineInput compares today's HRV and resting heart rate with the
// athlete's rolling baselines.
type BaselineInput struct {
	HRV         float64 `json:"hrv"`
	BaselineHRV float64 `json:"baseline_hrv"`
	RestingHR   float64 `json:"resting_hr"`
	BaselineRHR float64 `json:"baseline_rhr"`
}

// RecoveryFromBaseline scores readiness 1-100 from the percentage change in
// HRV (up is good) and resting heart rate (up is bad).
func RecoveryFromBaseline(in BaselineInput) int {
	if in.BaselineHRV <= 0 || in.BaselineRHR <= 0 {
		return NeutralRecovery
	}
	hrvDiff := (in.HRV - in.BaselineHRV) / in.BaselineHRV * 100
	rhrDiff := (in.RestingHR - in.BaselineRHR) / in.BaselineRHR * 100

	score := NeutralRecovery + 0.5*hrvDiff - 1.0*rhrDiff
	return roundInt(clampFloat(score, 1, 100))
}

// CompositeInput is the self-reported recovery check-in.
type CompositeInput struct {
	SleepHours  float64 `json:"sleep_hours"`
	RestingHR   float64 `json:"resting_hr"`
	EnergyLevel float64 `json:"energy"`
}

// RecoveryComposite adds a sleep component (up to 40), a resting heart rate
// component (up to 40) and an energy component (20 at a rating of 10),
// clamped to 0-100.
func RecoveryComposite(in CompositeInput) int {
	sleep := clampFloat(in.SleepHours/8*40, 0, 40)
	heart := clampFloat(100-in.RestingHR, 0, 40)
	energy := in.EnergyLevel / 10 * 20

	return roundInt(clampFloat(sleep+heart+energy, 0, 100))
}
