package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryFromBaseline(t *testing.T) {
	cases := []struct {
		name string
		in   BaselineInput
		want int
	}{
		{"no hrv baseline", BaselineInput{HRV: 60, RestingHR: 55, BaselineRHR: 60}, NeutralRecovery},
		{"no rhr baseline", BaselineInput{HRV: 60, BaselineHRV: 50, RestingHR: 55}, NeutralRecovery},
		{"at baseline", BaselineInput{HRV: 50, BaselineHRV: 50, RestingHR: 60, BaselineRHR: 60}, 50},
		{"improved", BaselineInput{HRV: 60, BaselineHRV: 50, RestingHR: 57, BaselineRHR: 60}, 65},
		{"clamped high", BaselineInput{HRV: 500, BaselineHRV: 50, RestingHR: 60, BaselineRHR: 60}, 100},
		{"clamped low", BaselineInput{HRV: 50, BaselineHRV: 50, RestingHR: 120, BaselineRHR: 60}, 1},
		// Both diffs overflow to +Inf; Inf - Inf is NaN, which clamps to the floor.
		{"overflowing diffs", BaselineInput{HRV: 1e308, BaselineHRV: 1e-308, RestingHR: 1e308, BaselineRHR: 1e-308}, 1},
		{"overflowing hrv", BaselineInput{HRV: 1e308, BaselineHRV: 1e-308, RestingHR: 60, BaselineRHR: 60}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RecoveryFromBaseline(tc.in))
		})
	}
}

func TestRecoveryComposite(t *testing.T) {
	cases := []struct {
		name string
		in   CompositeInput
		want int
	}{
		{"clamps to 100", CompositeInput{SleepHours: 20, RestingHR: 0, EnergyLevel: 10}, 100},
		{"energy overflow", CompositeInput{SleepHours: 8, RestingHR: 50, EnergyLevel: 15}, 100},
		{"good night", CompositeInput{SleepHours: 8, RestingHR: 60, EnergyLevel: 5}, 90},
		{"short night", CompositeInput{SleepHours: 4, RestingHR: 70, EnergyLevel: 5}, 60},
		{"typical", CompositeInput{SleepHours: 6, RestingHR: 65, EnergyLevel: 7}, 79},
		{"floor", CompositeInput{SleepHours: 0, RestingHR: 120, EnergyLevel: 0}, 0},
		{"negative energy floors at zero", CompositeInput{SleepHours: 0, RestingHR: 120, EnergyLevel: -5}, 0},
		{"NaN energy floors at zero", CompositeInput{SleepHours: 8, RestingHR: 60, EnergyLevel: math.NaN()}, 0},
		{"infinite energy caps at 100", CompositeInput{SleepHours: 8, RestingHR: 60, EnergyLevel: math.Inf(1)}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RecoveryComposite(tc.in))
		})
	}
}
