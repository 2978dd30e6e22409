package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"lg/flux-api/internal/engine"
)

func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

func mustRequire(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(err)
		}
	}
}

/* ─── targets ────────────────────────────────────────────────────────── */

type targetsResult struct {
	BMR     int                  `json:"bmr"`
	Targets engine.EnergyTargets `json:"targets"`
}

func newTargetsCommand(opts *RootOptions) *cobra.Command {
	var (
		m                   engine.BodyMetrics
		gender, level, goal string
	)
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Daily calorie and macro targets from body metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := engine.ParseGender(gender)
			if !ok {
				return fmt.Errorf("gender must be male or female, got %q", gender)
			}
			m.Gender = g
			ac := engine.ActivityContext{}
			if ac.Level, ok = engine.ParseActivityLevel(level); !ok {
				return fmt.Errorf("unknown activity level %q", level)
			}
			if ac.Goal, ok = engine.ParseGoal(goal); !ok {
				return fmt.Errorf("unknown goal %q", goal)
			}

			targets, ok := engine.ComputeTargets(m, ac)
			if !ok {
				return fmt.Errorf("weight, height and age must all be positive")
			}
			res := targetsResult{BMR: int(math.Round(engine.BMR(m))), Targets: targets}
			return formatter(opts, cmd).Print(res,
				fmt.Sprintf("BMR:      %d kcal", res.BMR),
				fmt.Sprintf("Target:   %d kcal", targets.Calories),
				fmt.Sprintf("Protein:  %d g", targets.ProteinG),
				fmt.Sprintf("Carbs:    %d g", targets.CarbsG),
				fmt.Sprintf("Fat:      %d g", targets.FatG),
			)
		},
	}
	cmd.Flags().Float64Var(&m.WeightKg, "weight", 0, "body weight in kg")
	cmd.Flags().Float64Var(&m.HeightCm, "height", 0, "height in cm")
	cmd.Flags().IntVar(&m.Age, "age", 0, "age in years")
	cmd.Flags().StringVar(&gender, "gender", "", "male|female")
	cmd.Flags().StringVar(&level, "activity", string(engine.Moderate), "sedentary|light|moderate|active|athlete")
	cmd.Flags().StringVar(&goal, "goal", string(engine.Maintain), "lose|maintain|gain")
	mustRequire(cmd, "weight", "height", "age", "gender")
	return cmd
}

/* ─── burn ───────────────────────────────────────────────────────────── */

type burnResult struct {
	MET      float64 `json:"met"`
	Calories int     `json:"calories"`
}

func newBurnCommand(opts *RootOptions) *cobra.Command {
	var (
		s        engine.ActivitySample
		weightKg float64
	)
	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Estimate calories burned by an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := burnResult{
				MET:      engine.METFor(s.Label, s.DurationMins, s.DistanceKm),
				Calories: s.Calories(weightKg),
			}
			return formatter(opts, cmd).Print(res,
				fmt.Sprintf("MET:      %.1f", res.MET),
				fmt.Sprintf("Burned:   %d kcal", res.Calories),
			)
		},
	}
	cmd.Flags().StringVar(&s.Label, "activity", "", "activity label, e.g. \"morning run\"")
	cmd.Flags().Float64Var(&s.DurationMins, "duration", 0, "duration in minutes")
	cmd.Flags().Float64Var(&s.DistanceKm, "distance", 0, "distance in km (optional)")
	cmd.Flags().Float64Var(&weightKg, "weight", 0, "body weight in kg")
	mustRequire(cmd, "duration", "weight")
	return cmd
}

/* ─── flux ───────────────────────────────────────────────────────────── */

func newFluxCommand(opts *RootOptions) *cobra.Command {
	var target, in, out int
	cmd := &cobra.Command{
		Use:   "flux",
		Short: "Energy balance for a day's intake and exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := engine.ComputeFluxState(target, in, out)
			return formatter(opts, cmd).Print(f,
				fmt.Sprintf("Balance:  %+d kcal (%s)", f.Balance, f.Zone),
				fmt.Sprintf("Progress: %d%% of %d kcal", f.BalancePercent, f.AdjustedTarget()),
				f.Recommendation,
			)
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "daily calorie target")
	cmd.Flags().IntVar(&in, "in", 0, "calories eaten")
	cmd.Flags().IntVar(&out, "out", 0, "calories burned through exercise")
	mustRequire(cmd, "target")
	return cmd
}

/* ─── strain ─────────────────────────────────────────────────────────── */

type strainResult struct {
	Variant string  `json:"variant"`
	Strain  float64 `json:"strain"`
}

func newStrainCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strain",
		Short: "Score a workout's strain",
	}
	cmd.AddCommand(newStrainImpulseCommand(opts))
	cmd.AddCommand(newStrainLoadCommand(opts))
	return cmd
}

func newStrainImpulseCommand(opts *RootOptions) *cobra.Command {
	var (
		in     engine.ImpulseInput
		gender string
	)
	cmd := &cobra.Command{
		Use:   "impulse",
		Short: "Heart-rate impulse strain; unset fields use --defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDefaults(opts.DefaultsPath)
			if err != nil {
				return err
			}
			if gender != "" {
				g, ok := engine.ParseGender(gender)
				if !ok {
					return fmt.Errorf("gender must be male or female, got %q", gender)
				}
				in.Gender = g
			}
			res := strainResult{Variant: "impulse", Strain: float64(engine.StrainFromImpulse(in, d))}
			return formatter(opts, cmd).Print(res,
				fmt.Sprintf("Intensity: %.2f", engine.ImpulseIntensity(in, d)),
				fmt.Sprintf("Strain:    %.0f", res.Strain),
			)
		},
	}
	cmd.Flags().Float64Var(&in.DurationMins, "duration", 0, "duration in minutes")
	cmd.Flags().Float64Var(&in.AvgHR, "avg-hr", 0, "average heart rate (optional)")
	cmd.Flags().IntVar(&in.Age, "age", 0, "age in years (optional)")
	cmd.Flags().StringVar(&gender, "gender", "", "male|female (optional)")
	cmd.Flags().Float64Var(&in.RestingHR, "resting-hr", 0, "resting heart rate (optional)")
	mustRequire(cmd, "duration")
	return cmd
}

func newStrainLoadCommand(opts *RootOptions) *cobra.Command {
	var duration, intensity float64
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Duration and perceived-intensity strain on a 0-21 scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if intensity < 1 || intensity > 10 {
				return fmt.Errorf("intensity must be between 1 and 10")
			}
			res := strainResult{Variant: "load", Strain: engine.StrainFromDurationIntensity(duration, intensity)}
			return formatter(opts, cmd).Print(res, fmt.Sprintf("Strain: %.1f / %.0f", res.Strain, engine.MaxStrain))
		},
	}
	cmd.Flags().Float64Var(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().Float64Var(&intensity, "intensity", 0, "perceived intensity 1-10")
	mustRequire(cmd, "duration", "intensity")
	return cmd
}

/* ─── recovery ───────────────────────────────────────────────────────── */

type recoveryResult struct {
	Variant  string `json:"variant"`
	Recovery int    `json:"recovery"`
}

func newRecoveryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recovery",
		Short: "Score readiness to train",
	}
	cmd.AddCommand(newRecoveryBaselineCommand(opts))
	cmd.AddCommand(newRecoveryCompositeCommand(opts))
	return cmd
}

func newRecoveryBaselineCommand(opts *RootOptions) *cobra.Command {
	var in engine.BaselineInput
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Recovery from HRV and resting HR against their baselines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := recoveryResult{Variant: "baseline", Recovery: engine.RecoveryFromBaseline(in)}
			return formatter(opts, cmd).Print(res, fmt.Sprintf("Recovery: %d", res.Recovery))
		},
	}
	cmd.Flags().Float64Var(&in.HRV, "hrv", 0, "today's HRV (ms)")
	cmd.Flags().Float64Var(&in.BaselineHRV, "baseline-hrv", 0, "baseline HRV (ms)")
	cmd.Flags().Float64Var(&in.RestingHR, "resting-hr", 0, "today's resting heart rate")
	cmd.Flags().Float64Var(&in.BaselineRHR, "baseline-rhr", 0, "baseline resting heart rate")
	mustRequire(cmd, "hrv", "resting-hr")
	return cmd
}

func newRecoveryCompositeCommand(opts *RootOptions) *cobra.Command {
	var in engine.CompositeInput
	cmd := &cobra.Command{
		Use:   "composite",
		Short: "Recovery from sleep, resting HR and a 1-10 energy rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.EnergyLevel < 1 || in.EnergyLevel > 10 {
				return fmt.Errorf("energy must be between 1 and 10")
			}
			res := recoveryResult{Variant: "composite", Recovery: engine.RecoveryComposite(in)}
			return formatter(opts, cmd).Print(res, fmt.Sprintf("Recovery: %d", res.Recovery))
		},
	}
	cmd.Flags().Float64Var(&in.SleepHours, "sleep", 0, "hours slept")
	cmd.Flags().Float64Var(&in.RestingHR, "resting-hr", 0, "resting heart rate")
	cmd.Flags().Float64Var(&in.EnergyLevel, "energy", 0, "energy rating 1-10")
	mustRequire(cmd, "sleep", "resting-hr", "energy")
	return cmd
}
