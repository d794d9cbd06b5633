// Package match provides name normalization, Levenshtein distance and
// candidate ranking used to suggest registry names for misspelled values.
//
// Key functions:
//   - NormalizeName: normalizes a name for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankNames: ranks registry names by similarity to a value
//   - Suggest: returns the closest names above a similarity threshold
package match
