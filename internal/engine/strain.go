package engine

import "math"

// Defaults supplies the values used when an input leaves age, gender or
// resting heart rate unset.
type Defaults struct {
	Age              int     `yaml:"age" json:"age"`
	Gender           Gender  `yaml:"gender" json:"gender"`
	RestingHR        float64 `yaml:"resting_hr" json:"resting_hr"`
	DefaultIntensity float64 `yaml:"default_intensity" json:"default_intensity"`
}

// DefaultDefaults returns age 25, male, resting HR 60 and a 0.55 fallback
// intensity.
func DefaultDefaults() Defaults {
	return Defaults{
		Age:              25,
		Gender:           Male,
		RestingHR:        60,
		DefaultIntensity: 0.55,
	}
}

// impulseConstants are the (k, b) pair in k·e^(b·intensity).
var impulseConstants = map[Gender][2]float64{
	Male:   {0.64, 1.92},
	Female: {0.86, 1.67},
}

// MaxStrain is the top of the duration×intensity scale.
const MaxStrain = 21.0

// ImpulseInput describes one workout for the impulse-based strain score.
// Zero fields fall back to Defaults; AvgHR of zero means no heart-rate data.
type ImpulseInput struct {
	DurationMins float64 `json:"duration_mins"`
	AvgHR        float64 `json:"avg_hr,omitempty"`
	Age          int     `json:"age,omitempty"`
	Gender       Gender  `json:"gender,omitempty"`
	RestingHR    float64 `json:"resting_hr,omitempty"`
}

// ImpulseIntensity returns the heart-rate-reserve fraction for in, or the
// default intensity when there is no usable heart rate.
func ImpulseIntensity(in ImpulseInput, d Defaults) float64 {
	age := in.Age
	if age <= 0 {
		age = d.Age
	}
	rest := in.RestingHR
	if rest <= 0 {
		rest = d.RestingHR
	}

	maxHR := 208 - 0.7*float64(age)
	hrr := maxHR - rest
	if in.AvgHR > rest && hrr > 0 {
		return (in.AvgHR - rest) / hrr
	}
	return d.DefaultIntensity
}

// StrainFromImpulse is a TRIMP-style training load:
// duration · intensity · k · e^(b · intensity), rounded. Typical sessions land
// between 0 and 21; there is no scale cap, only saturation at 2^53 when the
// exponential overflows. Never negative.
func StrainFromImpulse(in ImpulseInput, d Defaults) int {
	if in.DurationMins <= 0 {
		return 0
	}
	gender := in.Gender
	if gender == "" {
		gender = d.Gender
	}
	c, ok := impulseConstants[gender]
	if !ok {
		c = impulseConstants[Male]
	}

	intensity := ImpulseIntensity(in, d)
	raw := in.DurationMins * intensity * c[0] * math.Exp(c[1]*intensity)
	if math.IsNaN(raw) || raw < 0 {
		return 0
	}
	return roundInt(raw)
}

// StrainFromDurationIntensity scores a session from its duration and a 1-10
// perceived intensity on a log-damped 0-21 scale with one decimal.
func StrainFromDurationIntensity(durationMins, intensity float64) float64 {
	raw := durationMins * intensity / 40
	damped := MaxStrain * (1 - math.Exp(-raw/10))
	return roundTo(clampFloat(damped, 0, MaxStrain), 1)
}
