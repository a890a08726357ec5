package match

// Levenshtein computes the minimum number of single-character insertions,
// deletions and substitutions that turn a into b.
// It keeps two rows of the matrix, sized by the shorter string.
func Levenshtein(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return len(b)
	case b == "":
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			substitution := prev[i-1]
			if a[i-1] != b[j-1] {
				substitution++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, substitution)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// LevenshteinNormalized maps the distance to a similarity in [0, 1],
// 1 meaning identical: 1 - distance/max(len(a), len(b)).
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// NormalizedLevenshteinScore compares two identifiers after NormalizeIdent.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}
