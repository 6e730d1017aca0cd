package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
)

// Ensure ChunkIndex implements the interface.
var _ driven.ChunkIndex = (*ChunkIndex)(nil)

// ChunkIndex is an in-memory implementation of driven.ChunkIndex.
type ChunkIndex struct {
	mu     sync.RWMutex
	chunks map[string][]domain.Chunk
}

// NewChunkIndex creates a new in-memory chunk index.
func NewChunkIndex() *ChunkIndex {
	return &ChunkIndex{
		chunks: make(map[string][]domain.Chunk),
	}
}

// Put replaces the cached chunks for an article.
func (c *ChunkIndex) Put(_ context.Context, articleID string, chunks []domain.Chunk) error {
	if articleID == "" {
		return domain.ErrInvalidInput
	}
	stored := make([]domain.Chunk, len(chunks))
	copy(stored, chunks)
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].Index < stored[j].Index
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.chunks[articleID] = stored
	return nil
}

// Get returns the cached chunks for an article ordered by chunk index.
func (c *ChunkIndex) Get(_ context.Context, articleID string) ([]domain.Chunk, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	chunks, ok := c.chunks[articleID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]domain.Chunk, len(chunks))
	copy(out, chunks)
	return out, nil
}

// Invalidate drops the cached chunks for an article.
func (c *ChunkIndex) Invalidate(_ context.Context, articleID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.chunks, articleID)
	return nil
}
