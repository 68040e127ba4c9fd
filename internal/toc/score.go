package toc

import "strings"

// Tokens splits text into whitespace-delimited words. Callers normalize
// before tokenizing if they want lenient comparison; Jaccard itself is
// case-sensitive.
func Tokens(text string) []string {
	return strings.Fields(text)
}

// Jaccard computes the Jaccard index of two token lists treated as sets:
// |intersection| / |union|, in [0.0, 1.0]. Two empty sets score 0.0 rather
// than dividing by zero. Symmetric and pure.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
