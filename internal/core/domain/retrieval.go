package domain

// MinQueryLength is the shortest query RetrieveContext accepts.
const MinQueryLength = 2

// RetrievalOptions configures a context retrieval call.
type RetrievalOptions struct {
	// TopK is the maximum number of chunks to return.
	TopK int

	// MaxContextTokens bounds the combined approximate token count of
	// the returned chunks. Zero means no token budget.
	MaxContextTokens int
}

// RetrievalMetadata summarises a retrieval result for the caller's
// context-budget accounting.
type RetrievalMetadata struct {
	// TotalChunks is the number of chunks returned.
	TotalChunks int

	// TotalTokens is the approximate token count of the returned chunks.
	TotalTokens int

	// MaxContextTokens echoes the requested budget.
	MaxContextTokens int

	// AvailableTokens is MaxContextTokens minus TotalTokens,
	// never negative.
	AvailableTokens int
}

// RetrievalResult is the outcome of one context retrieval call.
type RetrievalResult struct {
	// Chunks are the selected chunks, ordered by descending relevance.
	Chunks []RankedChunk

	// Metadata is the token accounting for the selection.
	Metadata RetrievalMetadata
}
