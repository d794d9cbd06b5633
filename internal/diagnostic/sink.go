package diagnostic

import (
	"fmt"
	"sync"
)

// Sink accumulates diagnostics for one load pass. It is safe for concurrent
// use and never fails.
type Sink struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report appends a diagnostic.
func (s *Sink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, d)
}

// Items returns a copy of the recorded diagnostics in report order.
func (s *Sink) Items() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)

	return out
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// HasErrors returns true if any diagnostic has error severity.
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Severity == SeverityError {
			return true
		}
	}

	return false
}

// Merge appends every diagnostic of other, preserving its order.
func (s *Sink) Merge(other *Sink) {
	if other == nil || other == s {
		return
	}

	items := other.Items()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, items...)
}

// Reset drops all recorded diagnostics.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// MissingField reports a required key that does not exist or has the wrong shape.
func (s *Sink) MissingField(file, path string) {
	s.Report(Diagnostic{
		Severity: MissingField.Severity(),
		Kind:     MissingField,
		File:     file,
		Path:     path,
		Message:  fmt.Sprintf("the key %s in %s does not exist or is incorrect", path, file),
	})
}

// Unresolvable reports a value that names nothing in its registry.
func (s *Sink) Unresolvable(file, path, value string, suggestions []string) {
	s.Report(Diagnostic{
		Severity:    UnresolvableReference.Severity(),
		Kind:        UnresolvableReference,
		File:        file,
		Path:        path,
		Value:       value,
		Message:     fmt.Sprintf("the value %s of key %s in %s is incorrect", value, path, file),
		Suggestions: suggestions,
	})
}

// Malformed reports a value or list element of the wrong type or range.
func (s *Sink) Malformed(file, path, value string) {
	s.Report(Diagnostic{
		Severity: MalformedElement.Severity(),
		Kind:     MalformedElement,
		File:     file,
		Path:     path,
		Value:    value,
		Message:  fmt.Sprintf("the value %s of key %s in %s is incorrect", value, path, file),
	})
}

// EmptyAfterFiltering reports a list discarded because bad of total entries failed.
func (s *Sink) EmptyAfterFiltering(file, path string, bad, total int) {
	s.Report(Diagnostic{
		Severity: EmptyAfterFiltering.Severity(),
		Kind:     EmptyAfterFiltering,
		File:     file,
		Path:     path,
		Message: fmt.Sprintf("the key %s in %s has %d incorrect entries out of %d, the whole list is ignored",
			path, file, bad, total),
	})
}

// FileError reports a file that could not be read or parsed.
func (s *Sink) FileError(file string, err error) {
	s.Report(Diagnostic{
		Severity: FileError.Severity(),
		Kind:     FileError,
		File:     file,
		Message:  fmt.Sprintf("failed to load %s: %v", file, err),
	})
}
