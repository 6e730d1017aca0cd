package domain

// AtomicAnswer is a 40-60 word self-contained text block intended for
// direct machine citation (answer engines, featured snippets).
type AtomicAnswer struct {
	// ID is the slugified heading plus the block's ordinal,
	// e.g. "getting-started-0".
	ID string

	// Heading is the section heading the answer was extracted under.
	Heading string

	// Answer is the 40-60 word answer text.
	Answer string

	// RelatedTopics are heuristically extracted entity phrases.
	RelatedTopics []string

	// Confidence is a trust score in [0,1]. Currently a fixed
	// optimistic default; see AnswerConfidence.
	Confidence float64
}

// AnswerConfidence is the static confidence assigned to extracted
// answers. A placeholder for a computed E-E-A-T style signal derived
// from source metadata.
const AnswerConfidence = 0.95

// MinAnswerWords and MaxAnswerWords bound the size of an atomic
// answer. Trailing fragments outside this band are dropped rather
// than emitted as answers too short or long to cite.
const (
	MinAnswerWords = 40
	MaxAnswerWords = 60
)
