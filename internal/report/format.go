package report

import (
	"errors"
	"fmt"
	"strings"
)

// Format names a diagnostic renderer.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatShort   Format = "short"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatCBOR    Format = "cbor"
)

// ErrUnknownFormat indicates a format name no renderer handles.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatPretty, FormatShort, FormatJSON, FormatMsgpack, FormatCBOR}
}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Binary reports whether the format is not meant for a terminal.
func (f Format) Binary() bool {
	return f == FormatMsgpack || f == FormatCBOR
}

// Options configures rendering.
type Options struct {
	// Color enables ANSI colors in the pretty format.
	Color bool
	// Max limits the number of rendered diagnostics; 0 renders all.
	Max int
}

func limit(n, maxItems int) int {
	if maxItems > 0 && maxItems < n {
		return maxItems
	}

	return n
}
