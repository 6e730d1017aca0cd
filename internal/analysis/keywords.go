package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
)

// Ensure Analyzer implements the interface.
var _ driven.TextAnalyzer = (*Analyzer)(nil)

// DefaultMaxKeywords is the keyword-set size used for similarity
// scoring when callers do not override it.
const DefaultMaxKeywords = 10

// minKeywordLength filters short function words. Tokens of this
// length or less are discarded before counting.
const minKeywordLength = 4

// Analyzer is the frequency/regex based TextAnalyzer. It carries no
// state; the zero value is usable.
type Analyzer struct{}

// NewAnalyzer creates a new lexical analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Keywords returns up to max salient terms from content: lowercase
// tokens longer than four characters, ordered by descending frequency.
// Ties keep first-seen order, so the result is deterministic for
// identical input.
func (a *Analyzer) Keywords(content string, max int) []string {
	if max <= 0 || content == "" {
		return nil
	}

	counts := make(map[string]int)
	var order []string

	for _, tok := range tokenize(content) {
		if len(tok) <= minKeywordLength {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}

// tokenize lowercases content, strips punctuation and splits on
// whitespace.
func tokenize(content string) []string {
	normalised := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, content)
	return strings.Fields(normalised)
}
