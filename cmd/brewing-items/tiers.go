package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the tier registry",
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

		tiers := snap.Tiers()
		names := tiers.Names()

		width := 0
		for _, n := range names {
			width = max(width, runewidth.StringWidth(n))
		}

		for _, n := range names {
			c, _ := tiers.Lookup(n)

			text := c.Text
			if c.Color != nil {
				tint := color.RGB(int(c.Color.R), int(c.Color.G), int(c.Color.B))
				if a.color {
					tint.EnableColor()
				} else {
					tint.DisableColor()
				}

				text = tint.Sprint(c.Text) + " " + c.Color.String()
			}

			fmt.Fprintf(os.Stdout, "%s  %s\n", runewidth.FillRight(n, width), text)
		}

		return nil
	},
}
