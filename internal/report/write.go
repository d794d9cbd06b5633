package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"brewing-items/internal/diagnostic"
)

// Write renders diags to w in format f.
func Write(w io.Writer, diags []diagnostic.Diagnostic, f Format, opts Options) error {
	switch f {
	case FormatPretty:
		return writePretty(w, diags, opts)
	case FormatShort:
		return writeShort(w, diags, opts)
	default:
		return encode(w, f, NewOutput(diags, opts))
	}
}

// writeShort prints one grep-friendly line per diagnostic:
//
//	items/a.yml:apple.material: warning[missing_field]: the key ...
func writeShort(w io.Writer, diags []diagnostic.Diagnostic, opts Options) error {
	n := limit(len(diags), opts.Max)

	for _, d := range diags[:n] {
		loc := d.File
		if d.Path != "" {
			loc += ":" + d.Path
		}

		if _, err := fmt.Fprintf(w, "%s: %s[%s]: %s\n", loc, d.Severity, d.Kind.Code(), d.Message); err != nil {
			return err
		}
	}

	return nil
}

type palette struct {
	warn *color.Color
	fail *color.Color
	loc  *color.Color
	hint *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		warn: color.New(color.FgYellow, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		loc:  color.New(color.FgCyan),
		hint: color.New(color.FgGreen),
		dim:  color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.warn, p.fail, p.loc, p.hint, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) severity(s diagnostic.Severity) *color.Color {
	if s == diagnostic.SeverityError {
		return p.fail
	}

	return p.warn
}

// writePretty prints an aligned table followed by a summary line.
func writePretty(w io.Writer, diags []diagnostic.Diagnostic, opts Options) error {
	p := newPalette(opts.Color)
	n := limit(len(diags), opts.Max)

	locs := make([]string, n)
	width := 0

	for i, d := range diags[:n] {
		locs[i] = location(d)
		width = max(width, runewidth.StringWidth(locs[i]))
	}

	var sb strings.Builder

	for i, d := range diags[:n] {
		sev := runewidth.FillRight(d.Severity.String(), len("warning"))
		sb.WriteString(p.severity(d.Severity).Sprint(sev))
		sb.WriteString("  ")
		sb.WriteString(p.loc.Sprint(runewidth.FillRight(locs[i], width)))
		sb.WriteString("  ")
		sb.WriteString(d.Message)
		sb.WriteByte('\n')

		if len(d.Suggestions) > 0 {
			sb.WriteString(strings.Repeat(" ", len("warning")+2+width+2))
			sb.WriteString(p.hint.Sprintf("did you mean %s?", strings.Join(d.Suggestions, ", ")))
			sb.WriteByte('\n')
		}
	}

	if n < len(diags) {
		sb.WriteString(p.dim.Sprintf("... and %s not shown\n", english.Plural(len(diags)-n, "more diagnostic", "")))
	}

	sb.WriteString(summary(diags))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}

func location(d diagnostic.Diagnostic) string {
	if d.Path == "" {
		return d.File
	}

	return d.File + " " + d.Path
}

// summary counts diagnostics by severity, e.g. "2 warnings, 1 error".
func summary(diags []diagnostic.Diagnostic) string {
	if len(diags) == 0 {
		return "no problems found"
	}

	var warnings, errs int

	for _, d := range diags {
		if d.Severity == diagnostic.SeverityError {
			errs++
		} else {
			warnings++
		}
	}

	return english.Plural(warnings, "warning", "") + ", " + english.Plural(errs, "error", "")
}
