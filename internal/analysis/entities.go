package analysis

import (
	"regexp"
	"strings"
)

// Entity heuristics: capitalised multi-word sequences approximate
// proper nouns, "the <noun>" picks up topical common nouns. A proxy
// for named-entity recognition, not a replacement for it.
var (
	capitalisedSeq = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)
	theNoun        = regexp.MustCompile(`\b[Tt]he ([a-z]{5,})\b`)
)

// maxEntities bounds the related-topics list on an answer block.
const maxEntities = 8

// Entities returns heuristically detected entity phrases from
// content, deduplicated in order of first appearance.
func (a *Analyzer) Entities(content string) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(phrase string) {
		if len(out) >= maxEntities {
			return
		}
		key := strings.ToLower(phrase)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, phrase)
	}

	for _, m := range capitalisedSeq.FindAllString(content, -1) {
		add(m)
	}
	for _, m := range theNoun.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	return out
}
