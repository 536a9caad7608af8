package match

import "sort"

// DefaultMinScore is the minimum similarity for a name to be suggested.
const DefaultMinScore = 0.5

// DefaultMaxSuggestions bounds the suggestions attached to a diagnostic.
const DefaultMaxSuggestions = 3

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against name and returns them by
// descending similarity. Comparison ignores case and separators.
func Rank(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{Name: k, Score: Similarity(name, k)})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultMaxSuggestions known names close to name.
func Suggest(name string, known []string) []string {
	var names []string
	for _, c := range Rank(name, known).AboveThreshold(DefaultMinScore).Top(DefaultMaxSuggestions) {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
