package match

import (
	"sort"
)

// DefaultThreshold is the minimum NameScore for a name to be suggested.
const DefaultThreshold = 0.6

// Candidate is a registry name scored against an author value.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every name against value and returns them sorted by
// score (descending), then by name for determinism.
func RankNames(value string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NameScore(value, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit names whose score is at least DefaultThreshold.
func Suggest(value string, names []string, limit int) []string {
	if value == "" || limit <= 0 {
		return nil
	}

	var out []string

	for _, c := range RankNames(value, names).Top(limit) {
		if c.Score < DefaultThreshold {
			break
		}

		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int {
	return len(c)
}

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}
