// fluxcalc runs the energy engine from the command line.
// Usage: go run ./cmd/fluxcalc targets --weight 70 --height 175 --age 30 --gender male
package main

import (
	"os"

	"lg/flux-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
