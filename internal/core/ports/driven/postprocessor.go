package driven

import (
	"context"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// PostProcessor processes article content to produce chunks.
// PostProcessors are chained in a pipeline (e.g., chunking, filtering).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process takes an article and returns chunks.
	// If the processor modifies chunks, it receives and returns chunks.
	// If the processor creates chunks (the chunker), it receives nil
	// and returns new chunks.
	Process(ctx context.Context, article *domain.Article, chunks []domain.Chunk) ([]domain.Chunk, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the article through all processors in order.
	// Returns the final chunks after all processing.
	Process(ctx context.Context, article *domain.Article) ([]domain.Chunk, error)
}
