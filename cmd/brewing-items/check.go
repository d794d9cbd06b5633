package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"brewing-items/internal/report"
)

var errCheckFailed = errors.New("check failed")

var checkStrict bool

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail on warnings too")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every item file and print the diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		snap, err := a.loader.Reload()
		if err != nil {
			return err
		}

		diags := snap.Diagnostics()
		if err := report.Write(os.Stdout, diags, a.format, a.reportOptions()); err != nil {
			return err
		}

		if !a.format.Binary() && a.format != report.FormatJSON {
			fmt.Fprintf(os.Stderr, "%s, %s, digest %016x\n",
				english.Plural(snap.Len(), "item", ""),
				english.Plural(snap.Tiers().Len(), "tier", ""),
				snap.Digest())
		}

		switch {
		case snap.HasErrors():
			return fmt.Errorf("%w: some files could not be loaded", errCheckFailed)
		case checkStrict && len(diags) > 0:
			return fmt.Errorf("%w: %s", errCheckFailed, english.Plural(len(diags), "diagnostic", ""))
		}

		return nil
	},
}
