// Package report renders diagnostics for people (pretty, short) and for
// tools (json, msgpack, cbor).
package report
