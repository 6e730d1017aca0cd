package driven

import (
	"context"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// ChunkIndex caches computed chunks so repeated retrieval requests
// do not re-chunk unchanged articles. The cache key is the pair
// (articleID, chunk index). The index is owned by the caller; core
// services treat a nil index as "recompute every time".
type ChunkIndex interface {
	// Put replaces the cached chunks for an article.
	Put(ctx context.Context, articleID string, chunks []domain.Chunk) error

	// Get returns the cached chunks for an article ordered by chunk
	// index, or domain.ErrNotFound when the article is not cached.
	Get(ctx context.Context, articleID string) ([]domain.Chunk, error)

	// Invalidate drops the cached chunks for an article.
	Invalidate(ctx context.Context, articleID string) error
}
