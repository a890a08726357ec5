package match

import "sort"

// DefaultThreshold is the minimal normalized score a candidate needs to be
// suggested.
const DefaultThreshold = 0.5

// Candidate is a scored suggestion.
type Candidate struct {
	Name  string
	Score float64
}

// Closest ranks candidates by similarity to name and returns those scoring
// at least threshold, best first. Ties keep the input order.
func Closest(name string, candidates []string, threshold float64) []Candidate {
	var ranked []Candidate

	for _, c := range candidates {
		score := NormalizedLevenshteinScore(name, c)
		if score >= threshold {
			ranked = append(ranked, Candidate{Name: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Suggest returns up to limit candidate names for name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Closest(name, candidates, DefaultThreshold)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}
