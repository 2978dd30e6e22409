// Package cli implements fluxcalc, a command-line front end to the energy
// engine for checking numbers without a server or database.
package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lg/flux-api/internal/engine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format       string // "json" | "text"
	DefaultsPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the fluxcalc root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fluxcalc",
		Short: "Energy balance calculator",
		Long:  "Compute daily targets, exercise burn, energy flux, strain and recovery from the command line.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DefaultsPath, "defaults", "", "YAML file overriding the strain defaults")

	cmd.AddCommand(newTargetsCommand(opts))
	cmd.AddCommand(newBurnCommand(opts))
	cmd.AddCommand(newFluxCommand(opts))
	cmd.AddCommand(newStrainCommand(opts))
	cmd.AddCommand(newRecoveryCommand(opts))

	return cmd
}

// loadDefaults reads the --defaults file over the built-in defaults. Keys
// missing from the file keep their built-in values.
func loadDefaults(path string) (engine.Defaults, error) {
	d := engine.DefaultDefaults()
	if path == "" {
		return d, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("reading defaults: %w", err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("parsing defaults %s: %w", path, err)
	}
	g, ok := engine.ParseGender(string(d.Gender))
	if !ok {
		return d, fmt.Errorf("defaults %s: gender must be male or female, got %q", path, d.Gender)
	}
	d.Gender = g
	if d.Age <= 0 || d.RestingHR <= 0 {
		return d, fmt.Errorf("defaults %s: age and resting_hr must be positive", path)
	}
	if d.DefaultIntensity <= 0 || d.DefaultIntensity > 1 {
		return d, fmt.Errorf("defaults %s: default_intensity must be in (0, 1]", path)
	}
	return d, nil
}
