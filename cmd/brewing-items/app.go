package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"brewing-items/internal/config"
	"brewing-items/internal/loader"
	"brewing-items/internal/report"
	"brewing-items/internal/resources"
	"brewing-items/internal/tree"
)

// app is the state shared by every subcommand.
type app struct {
	cfg    config.Config
	format report.Format
	color  bool
	loader *loader.Loader
}

// newApp loads the configuration, applies command line overrides, validates
// the result and builds a loader over the configured items directory.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if changed(cmd, "color") {
		cfg.Color = flagColor
	}

	if changed(cmd, "format") {
		cfg.Format = flagFormat
	}

	if changed(cmd, "jobs") {
		cfg.Jobs = flagJobs
	}

	if changed(cmd, "max-diagnostics") {
		cfg.MaxDiagnostics = flagMaxDiagnostics
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	out := io.Discard
	if flagVerbose {
		out = os.Stderr
	}

	itemsDir := cfg.ItemsPath()

	l := loader.New(loader.Options{
		Source:    tree.OpenDir(itemsDir),
		Bootstrap: resources.NewExtractor(itemsDir, flagConfig),
		TierStem:  cfg.TierStem,
		Jobs:      cfg.Jobs,
		Logger:    log.New(out, "brewing-items: ", log.LstdFlags),
	})

	return &app{
		cfg:    cfg,
		format: format,
		color:  useColor(cfg.Color, os.Stdout),
		loader: l,
	}, nil
}

// changed reports whether the named flag, local or inherited, was set on
// the command line.
func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(f)
	}
}

func (a *app) reportOptions() report.Options {
	return report.Options{Color: a.color, Max: a.cfg.MaxDiagnostics}
}
