package driven

import (
	"context"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// ArticleStore persists articles. The core treats the store as the
// owner of the corpus: articles are read per-request and never
// mutated by core services.
type ArticleStore interface {
	// Save stores or updates an article.
	Save(ctx context.Context, article *domain.Article) error

	// Get retrieves an article by ID.
	Get(ctx context.Context, id string) (*domain.Article, error)

	// GetBySlug retrieves an article by slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)

	// List returns all articles, ordered by title.
	List(ctx context.Context) ([]domain.Article, error)

	// Delete removes an article.
	Delete(ctx context.Context, id string) error
}
