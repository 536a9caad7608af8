package match

// Distance is the optimal string alignment distance between a and b:
// insertions, deletions, substitutions and swaps of two adjacent runes
// each cost one. Swaps matter for hand-typed tags ("Itn", "Stirng").
func Distance(a, b string) int {
	return distance([]rune(a), []rune(b))
}

func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Rows i-2, i-1 and i of the edit matrix.
	before := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[j] = min(curr[j], before[j-2]+1)
			}
		}

		before, prev, curr = prev, curr, before
	}

	return prev[len(b)]
}

// Similarity scores a against b in [0, 1] after NormalizeIdent: 1 for
// names that only differ in case or separators, 0 for nothing in common.
func Similarity(a, b string) float64 {
	fa, fb := []rune(NormalizeIdent(a)), []rune(NormalizeIdent(b))
	if len(fa) == 0 && len(fb) == 0 {
		return 1
	}

	return 1 - float64(distance(fa, fb))/float64(max(len(fa), len(fb)))
}
