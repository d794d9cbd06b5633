// Package main provides the CLI entrypoint for brewing-items.
//
// brewing-items resolves brewing item templates (YAML or TOML files) into
// typed descriptors and reports every problem it finds along the way:
//   - check: run a load pass and print its diagnostics
//   - show: print resolved descriptors
//   - tiers: print the tier registry
//   - version: print build information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "brewing-items",
	Short:         "Resolve and validate brewing item templates",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagConfig         string
	flagColor          string
	flagFormat         string
	flagJobs           int
	flagMaxDiagnostics int
	flagVerbose        bool
)

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagConfig, "config", "c", "brewing.toml", "configuration file")
	flags.StringVar(&flagColor, "color", "", "colorize output (auto|always|never)")
	flags.StringVar(&flagFormat, "format", "", "diagnostic format (pretty|short|json|msgpack|cbor)")
	flags.IntVarP(&flagJobs, "jobs", "j", 0, "files resolved in parallel (0 = one per CPU)")
	flags.IntVar(&flagMaxDiagnostics, "max-diagnostics", 0, "maximum number of diagnostics to print (0 = all)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log load passes to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
