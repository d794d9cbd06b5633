package diagnostic

import (
	"fmt"
	"strings"

	"brewing-items/internal/common"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Kind classifies what went wrong with a field.
type Kind int

const (
	// MissingField is a required key that is absent or has the wrong shape.
	MissingField Kind = iota
	// UnresolvableReference is a name that is not in its registry.
	UnresolvableReference
	// MalformedElement is a value (or list element) of the wrong type or range.
	MalformedElement
	// EmptyAfterFiltering is a list discarded because some entries were dropped.
	// It follows the diagnostics of the dropped entries, so an all-or-nothing
	// list with one bad entry reports two lines: the entry, then the list.
	// The list may still have had valid entries when it was discarded.
	EmptyAfterFiltering
	// FileError is a file that could not be read or parsed; it is skipped.
	FileError
)

// Code returns the stable machine-readable identifier of the kind.
func (k Kind) Code() string {
	switch k {
	case MissingField:
		return "missing_field"
	case UnresolvableReference:
		return "unresolvable_reference"
	case MalformedElement:
		return "malformed_element"
	case EmptyAfterFiltering:
		return "empty_after_filtering"
	case FileError:
		return "file_error"
	default:
		return common.UnknownStr
	}
}

// String returns the kind code.
func (k Kind) String() string {
	return k.Code()
}

// Severity returns the severity every diagnostic of this kind carries.
func (k Kind) Severity() Severity {
	if k == FileError {
		return SeverityError
	}

	return SeverityWarning
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind of failure.
	Kind Kind
	// File is the path of the source file the value came from.
	File string
	// Path is the dot/bracket path inside the file, e.g. "apple.lore[1].text".
	Path string
	// Value is the offending value as written by the author (if any).
	Value string
	// Message is the human-readable description.
	Message string
	// Suggestions are close registry names for unresolvable references.
	Suggestions []string
}

// String returns a formatted diagnostic string. The message already names
// the file and path.
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("%s [%s] %s", d.Severity, d.Kind.Code(), d.Message)
	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return msg
}
