package driven

// TextAnalyzer extracts salient terms and entity phrases from text.
// The default implementation is frequency/regex based; swapping in a
// real NLP backend requires no call-site changes.
type TextAnalyzer interface {
	// Keywords returns up to max salient terms from content, ordered
	// by descending frequency with first-seen tie order.
	Keywords(content string, max int) []string

	// Entities returns heuristically detected entity phrases
	// (capitalised sequences and "the <noun>" patterns).
	Entities(content string) []string
}
