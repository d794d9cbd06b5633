package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"brewing-items/internal/diagnostic"
)

// Entry is the serialized form of one diagnostic.
type Entry struct {
	Severity    string   `json:"severity" msgpack:"severity" cbor:"severity"`
	Code        string   `json:"code" msgpack:"code" cbor:"code"`
	File        string   `json:"file" msgpack:"file" cbor:"file"`
	Path        string   `json:"path,omitempty" msgpack:"path,omitempty" cbor:"path,omitempty"`
	Value       string   `json:"value,omitempty" msgpack:"value,omitempty" cbor:"value,omitempty"`
	Message     string   `json:"message" msgpack:"message" cbor:"message"`
	Suggestions []string `json:"suggestions,omitempty" msgpack:"suggestions,omitempty" cbor:"suggestions,omitempty"`
}

// Output is the root document of the structured formats.
type Output struct {
	Total       int     `json:"total" msgpack:"total" cbor:"total"`
	Truncated   int     `json:"truncated,omitempty" msgpack:"truncated,omitempty" cbor:"truncated,omitempty"`
	Diagnostics []Entry `json:"diagnostics" msgpack:"diagnostics" cbor:"diagnostics"`
}

// NewOutput builds the structured document for diags.
func NewOutput(diags []diagnostic.Diagnostic, opts Options) Output {
	n := limit(len(diags), opts.Max)

	out := Output{
		Total:       len(diags),
		Truncated:   len(diags) - n,
		Diagnostics: make([]Entry, 0, n),
	}

	for _, d := range diags[:n] {
		out.Diagnostics = append(out.Diagnostics, Entry{
			Severity:    d.Severity.String(),
			Code:        d.Kind.Code(),
			File:        d.File,
			Path:        d.Path,
			Value:       d.Value,
			Message:     d.Message,
			Suggestions: d.Suggestions,
		})
	}

	return out
}

func encode(w io.Writer, f Format, out Output) error {
	var err error

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(out)
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(out)
	case FormatCBOR:
		err = cbor.NewEncoder(w).Encode(out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s report: %w", f, err)
	}

	return nil
}

// Decode reads a document written by Write in a structured format.
func Decode(r io.Reader, f Format) (Output, error) {
	var (
		out Output
		err error
	)

	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&out)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&out)
	case FormatCBOR:
		err = cbor.NewDecoder(r).Decode(&out)
	default:
		return Output{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err != nil {
		return Output{}, fmt.Errorf("failed to decode %s report: %w", f, err)
	}

	return out, nil
}
