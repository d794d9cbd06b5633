package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show brewing-items version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := color.New(color.FgYellow, color.Bold)
		if useColor(flagColor, os.Stdout) {
			v.EnableColor()
		} else {
			v.DisableColor()
		}

		fmt.Fprintf(os.Stdout, "brewing-items %s\n", v.Sprint(Version))

		return nil
	},
}
