package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driving"
	"github.com/wikidex/wikidex-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// DefaultTopK is the chunk count returned when the caller does not
// ask for a specific number.
const DefaultTopK = 5

// RetrievalService ranks article chunks against free-text queries.
type RetrievalService struct {
	store    driven.ArticleStore
	pipeline driven.PostProcessorPipeline
	index    driven.ChunkIndex
}

// NewRetrievalService creates a new retrieval service. The pipeline
// produces chunks from articles; it must contain at least a chunker.
func NewRetrievalService(store driven.ArticleStore, pipeline driven.PostProcessorPipeline) *RetrievalService {
	return &RetrievalService{
		store:    store,
		pipeline: pipeline,
	}
}

// SetChunkIndex sets an optional chunk cache. With no index, chunks
// are recomputed from article content on every request.
func (s *RetrievalService) SetChunkIndex(index driven.ChunkIndex) {
	s.index = index
}

// RetrieveContext returns the best chunks for a query across the
// whole corpus, bounded by opts.TopK and opts.MaxContextTokens.
func (s *RetrievalService) RetrieveContext(
	ctx context.Context, query string, opts domain.RetrievalOptions,
) (*domain.RetrievalResult, error) {
	logger.Section("Context Retrieval")

	query = strings.TrimSpace(query)
	if len(query) < domain.MinQueryLength {
		return nil, fmt.Errorf("%w: need at least %d characters", domain.ErrQueryTooShort, domain.MinQueryLength)
	}
	logger.Debug("Query: %q", query)

	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	logger.Debug("TopK: %d, MaxContextTokens: %d", topK, opts.MaxContextTokens)

	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	logger.Debug("Corpus: %d articles", len(articles))

	var corpus []domain.Chunk
	for i := range articles {
		chunks, err := s.chunksFor(ctx, &articles[i])
		if err != nil {
			return nil, fmt.Errorf("chunk article %s: %w", articles[i].ID, err)
		}
		corpus = append(corpus, chunks...)
	}
	logger.Debug("Corpus: %d chunks", len(corpus))

	ranked := RankChunks(corpus, query, topK)

	// Apply the token budget: keep chunks until the next one would
	// overflow the guard band.
	selected := ranked
	totalTokens := 0
	if opts.MaxContextTokens > 0 {
		selected = make([]domain.RankedChunk, 0, len(ranked))
		for _, rc := range ranked {
			if totalTokens+rc.Metadata.TokenCount > opts.MaxContextTokens {
				break
			}
			totalTokens += rc.Metadata.TokenCount
			selected = append(selected, rc)
		}
	} else {
		for _, rc := range ranked {
			totalTokens += rc.Metadata.TokenCount
		}
	}

	available := opts.MaxContextTokens - totalTokens
	if available < 0 {
		available = 0
	}

	logger.Info("Selected %d chunks, %d tokens", len(selected), totalTokens)

	return &domain.RetrievalResult{
		Chunks: selected,
		Metadata: domain.RetrievalMetadata{
			TotalChunks:      len(selected),
			TotalTokens:      totalTokens,
			MaxContextTokens: opts.MaxContextTokens,
			AvailableTokens:  available,
		},
	}, nil
}

// ArticleChunks returns up to limit chunks for one article, ordered
// by chunk index ascending. limit <= 0 means all.
func (s *RetrievalService) ArticleChunks(ctx context.Context, articleID string, limit int) ([]domain.Chunk, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	article, err := s.store.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", articleID, err)
	}

	chunks, err := s.chunksFor(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("chunk article %s: %w", articleID, err)
	}

	if limit > 0 && len(chunks) > limit {
		chunks = chunks[:limit]
	}
	return chunks, nil
}

// RankChunks orders chunks by descending relevance to the query and
// truncates to topK. The sort is stable: chunks with equal scores
// keep their original order. Pure function over its inputs.
func RankChunks(chunks []domain.Chunk, query string, topK int) []domain.RankedChunk {
	if topK <= 0 {
		topK = DefaultTopK
	}

	ranked := make([]domain.RankedChunk, 0, len(chunks))
	for _, c := range chunks {
		ranked = append(ranked, domain.RankedChunk{
			Chunk: c,
			Score: analysis.ScoreQuery(query, c.Content),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// chunksFor returns an article's chunks, using the chunk index as a
// cache when one is configured.
func (s *RetrievalService) chunksFor(ctx context.Context, article *domain.Article) ([]domain.Chunk, error) {
	if s.index != nil {
		cached, err := s.index.Get(ctx, article.ID)
		if err == nil {
			logger.Debug("Chunk index hit: %s (%d chunks)", article.ID, len(cached))
			return cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("chunk index get: %w", err)
		}
	}

	chunks, err := s.pipeline.Process(ctx, article)
	if err != nil {
		return nil, err
	}

	if s.index != nil {
		if err := s.index.Put(ctx, article.ID, chunks); err != nil {
			// The cache is an optimisation; retrieval still works.
			logger.Warn("Chunk index put failed for %s: %v", article.ID, err)
		}
	}
	return chunks, nil
}

// Highlights returns up to three sentences from content that contain
// a query term, truncated to 200 characters each.
func Highlights(content, query string) []string {
	queryTerms := strings.Fields(strings.ToLower(query))
	if len(queryTerms) == 0 {
		return nil
	}

	var highlights []string
	for _, sentence := range analysis.Sentences(content) {
		sentenceLower := strings.ToLower(sentence)
		for _, term := range queryTerms {
			if strings.Contains(sentenceLower, term) {
				if len(sentence) > 200 {
					sentence = truncateAtRune(sentence, 200) + "..."
				}
				highlights = append(highlights, sentence)
				break
			}
		}
		if len(highlights) >= 3 {
			break
		}
	}
	return highlights
}

// truncateAtRune cuts s to at most n bytes, backing up so the cut
// never lands inside a multibyte rune.
func truncateAtRune(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
