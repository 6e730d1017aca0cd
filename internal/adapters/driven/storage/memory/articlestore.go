// Package memory provides in-memory implementations of the storage
// ports. Used for tests and for one-shot CLI invocations where
// persistence is not needed.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
)

// Ensure ArticleStore implements the interface.
var _ driven.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is an in-memory implementation of driven.ArticleStore.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
}

// NewArticleStore creates a new in-memory article store.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		articles: make(map[string]domain.Article),
	}
}

// Save stores or updates an article.
func (s *ArticleStore) Save(_ context.Context, article *domain.Article) error {
	if article == nil || article.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[article.ID] = *article
	return nil
}

// Get retrieves an article by ID.
func (s *ArticleStore) Get(_ context.Context, id string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	article, ok := s.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &article, nil
}

// GetBySlug retrieves an article by slug.
func (s *ArticleStore) GetBySlug(_ context.Context, slug string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := range s.articles {
		article := s.articles[id]
		if article.Slug == slug {
			return &article, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all articles, ordered by title.
func (s *ArticleStore) List(_ context.Context) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Article, 0, len(s.articles))
	for id := range s.articles {
		result = append(result, s.articles[id])
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Title == result[j].Title {
			return result[i].ID < result[j].ID
		}
		return result[i].Title < result[j].Title
	})
	return result, nil
}

// Delete removes an article.
func (s *ArticleStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.articles, id)
	return nil
}
