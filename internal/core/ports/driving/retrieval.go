package driving

import (
	"context"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// RetrievalService provides chunk retrieval and ranking over the
// article corpus.
type RetrievalService interface {
	// RetrieveContext returns the best chunks for a query across the
	// whole corpus, bounded by opts.TopK and opts.MaxContextTokens.
	// Queries shorter than domain.MinQueryLength are rejected with
	// domain.ErrQueryTooShort.
	RetrieveContext(ctx context.Context, query string, opts domain.RetrievalOptions) (*domain.RetrievalResult, error)

	// ArticleChunks returns up to limit chunks for one article,
	// ordered by chunk index ascending. limit <= 0 means all.
	ArticleChunks(ctx context.Context, articleID string, limit int) ([]domain.Chunk, error)
}
