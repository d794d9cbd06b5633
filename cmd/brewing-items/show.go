package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"brewing-items/internal/item"
)

var showDump bool

func init() {
	showCmd.Flags().BoolVar(&showDump, "dump", false, "dump descriptors with every field")
}

var showCmd = &cobra.Command{
	Use:   "show [id...]",
	Short: "Print resolved item descriptors",
	Long:  "Without arguments, lists every item. With identifiers, prints those items.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		snap, err := a.loader.Reload()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			writeItemList(os.Stdout, snap.Descriptors())
			return nil
		}

		for _, id := range args {
			d, ok := snap.Get(id)
			if !ok {
				return fmt.Errorf("no item %q", id)
			}

			if showDump {
				spew.Fdump(os.Stdout, d)
				continue
			}

			writeItem(os.Stdout, d, a.color)
		}

		return nil
	},
}

func writeItemList(w io.Writer, items []item.Descriptor) {
	width := 0
	for _, d := range items {
		width = max(width, runewidth.StringWidth(d.ID))
	}

	for _, d := range items {
		material := string(d.Material)
		if !d.HasMaterial() {
			material = "-"
		}

		fmt.Fprintf(w, "%s  %s  %s\n", runewidth.FillRight(d.ID, width), material, d.Source)
	}
}

func writeItem(w io.Writer, d item.Descriptor, colored bool) {
	title := color.New(color.Bold)
	if colored {
		title.EnableColor()
	} else {
		title.DisableColor()
	}

	fmt.Fprintln(w, title.Sprint(d.ID), "from", d.Source)

	field := func(name string, value any) {
		fmt.Fprintf(w, "  %s %v\n", runewidth.FillRight(name+":", 20), value)
	}

	field("material", orDash(string(d.Material)))

	if d.Display != nil {
		field("display", content(*d.Display))
	}

	for i, l := range d.Lore {
		field(fmt.Sprintf("lore[%d]", i), content(l))
	}

	field("tier", orDash(d.Tier))
	field("provider", orDash(string(d.Provider)))
	field("custom-model-data", d.CustomModelData)
	field("required-level", d.RequiredLevel)
	field("restore.food", d.RestoreFood)
	field("restore.health", d.RestoreHealth)
	field("restore.saturation", d.RestoreSaturation)

	for i, e := range d.Effects {
		field(fmt.Sprintf("effect[%d]", i), fmt.Sprintf("%s duration=%d amplifier=%d ambient=%t particles=%t icon=%t",
			e.Type, e.Duration, e.Amplifier, e.Ambient, e.ShowParticles, e.ShowIcon))
	}

	if len(d.Command) > 0 {
		field("command", strings.Join(d.Command, " | "))
	}
}

func content(c item.ContentSpec) string {
	if c.Color == nil {
		return c.Text
	}

	return c.Text + " " + c.Color.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
