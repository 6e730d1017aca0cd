package analysis

import (
	"regexp"
	"strings"
)

// Jaccard computes set similarity between two keyword lists:
// |A∩B| / |A∪B|. Returns 0 when the union is empty. Symmetric, and 1
// when both lists contain the same non-empty set.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, k := range a {
		setA[k] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, k := range b {
		setB[k] = struct{}{}
	}

	intersection := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Similarity scores two article bodies in [0,1] by Jaccard overlap of
// their top keyword sets.
func (a *Analyzer) Similarity(contentA, contentB string) float64 {
	return Jaccard(
		a.Keywords(contentA, DefaultMaxKeywords),
		a.Keywords(contentB, DefaultMaxKeywords),
	)
}

// ScoreQuery scores content against a free-text query: the sum of
// word-boundary occurrences of each query term, divided by the term
// count. Raw term-frequency density, not IDF weighted - adequate for
// small corpora; callers needing precision at scale should substitute
// a proper IR scorer.
func ScoreQuery(query, content string) float64 {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return 0
	}

	contentLower := strings.ToLower(content)
	matches := 0
	for _, term := range terms {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		matches += len(re.FindAllStringIndex(contentLower, -1))
	}

	return float64(matches) / float64(len(terms))
}
