package domain

// Chunk represents a bounded contiguous span of an article's text.
// Articles are split into chunks for granular retrieval; consecutive
// chunks of one article share an overlap window of content.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// ArticleID links to the parent Article.
	ArticleID string

	// Index is the 0-based ordinal position within the article.
	// Chunks for one article are sequential with no gaps.
	Index int

	// Content is the text content of this chunk.
	Content string

	// Metadata describes where the chunk sits in its article.
	Metadata ChunkMetadata
}

// ChunkMetadata carries positional and sizing information for a chunk.
type ChunkMetadata struct {
	// Title is the parent article's title.
	Title string

	// Section is the heading the chunk falls under, if known.
	Section string

	// TokenCount is the approximate token count of Content.
	TokenCount int

	// StartChar is the absolute byte offset of the chunk in the
	// original content. Monotonically non-decreasing across chunks.
	StartChar int

	// EndChar is the absolute byte offset one past the chunk's end.
	EndChar int
}

// RankedChunk is a Chunk annotated with a relevance score for one
// query. The score is transient: it exists only within the scope of
// a single ranking call and is not normalised across queries.
type RankedChunk struct {
	Chunk

	// Score is the relevance score, >= 0 and unbounded above.
	Score float64
}

// TokenEstimate is an approximate token count with an uncertainty
// band. It is derived on demand and never cached as authoritative.
type TokenEstimate struct {
	// Approximate is the best-guess token count.
	Approximate int

	// Range bounds the estimate: Min <= Approximate <= Max.
	Range TokenRange
}

// TokenRange is the lower and upper bound of a token estimate.
type TokenRange struct {
	Min int
	Max int
}
