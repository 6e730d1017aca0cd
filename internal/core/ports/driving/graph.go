package driving

import (
	"context"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// GraphService builds and traverses the article knowledge graph.
type GraphService interface {
	// BuildGraph constructs the full knowledge graph from the stored
	// corpus. Cost is quadratic in article count (pairwise
	// similarity); callers integrating large corpora should bound the
	// corpus they feed in.
	BuildGraph(ctx context.Context) (*domain.KnowledgeGraph, error)

	// Related returns articles similar to the given article, highest
	// similarity first.
	Related(ctx context.Context, articleID string, limit int) ([]domain.RelatedArticle, error)

	// Backlinks returns every article whose content references the
	// given title, independent of graph structure.
	Backlinks(ctx context.Context, title string) ([]domain.BackLink, error)

	// Recommendations walks the graph breadth-first from an article
	// and returns up to limit reachable nodes, excluding the start.
	Recommendations(ctx context.Context, articleID string, limit int) ([]*domain.GraphNode, error)
}
