package analysis

import "github.com/wikidex/wikidex-cli/internal/core/domain"

// EstimateTokens approximates the token count of text without calling
// a real tokenizer. The 4-characters-per-token heuristic is the
// standard rule of thumb for English prose; Min and Max give callers
// a guard band for context-budget accounting.
func EstimateTokens(text string) domain.TokenEstimate {
	n := len(text)
	if n == 0 {
		return domain.TokenEstimate{}
	}
	return domain.TokenEstimate{
		Approximate: ceilDiv(n, 4),
		Range: domain.TokenRange{
			Min: ceilDiv(n, 5),
			Max: ceilDiv(n, 3),
		},
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
