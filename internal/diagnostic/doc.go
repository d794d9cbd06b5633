// Package diagnostic records non-fatal validation failures produced while
// resolving item templates.
//
// Key capabilities:
//   - A closed Kind taxonomy (missing field, unresolvable reference,
//     malformed element, empty after filtering, file error)
//   - A concurrency-safe, append-only Sink, one per load pass
//   - "did you mean" suggestions attached to unresolvable names
package diagnostic
