// Package registry holds the closed lookup tables a load pass resolves names
// against: materials, status effects, providers and the per-pass tier set.
//
// Static tables are case-insensitive (input is upper-cased before lookup).
// Tier lookup is exact. Every table can produce "did you mean" suggestions
// for a name it does not know.
package registry
