package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driving"
	"github.com/wikidex/wikidex-cli/internal/logger"
)

// Ensure GraphService implements the interface.
var _ driving.GraphService = (*GraphService)(nil)

// DefaultMaxConnections caps the related edges per graph node.
const DefaultMaxConnections = 10

// DefaultSimilarityThreshold is the minimum Jaccard score for a
// related edge.
const DefaultSimilarityThreshold = 0.1

// DefaultRecommendations is the recommendation count when the caller
// does not ask for a specific number.
const DefaultRecommendations = 5

// referencePattern matches explicit [[Title]] wiki-link markers.
var referencePattern = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// GraphService builds the article knowledge graph from explicit
// references and keyword similarity. Building is quadratic in article
// count; callers with large corpora should bound what they feed in.
type GraphService struct {
	store               driven.ArticleStore
	analyzer            driven.TextAnalyzer
	maxConnections      int
	similarityThreshold float64
}

// NewGraphService creates a new graph service.
func NewGraphService(store driven.ArticleStore, analyzer driven.TextAnalyzer) *GraphService {
	return &GraphService{
		store:               store,
		analyzer:            analyzer,
		maxConnections:      DefaultMaxConnections,
		similarityThreshold: DefaultSimilarityThreshold,
	}
}

// SetMaxConnections overrides the related-edge cap per node.
func (s *GraphService) SetMaxConnections(n int) {
	if n > 0 {
		s.maxConnections = n
	}
}

// SetSimilarityThreshold overrides the minimum score for related edges.
func (s *GraphService) SetSimilarityThreshold(t float64) {
	if t >= 0 && t <= 1 {
		s.similarityThreshold = t
	}
}

// BuildGraph constructs the full knowledge graph from the stored
// corpus. The graph is deterministic for an identical corpus and
// ordering, and is rebuilt in full on every call.
func (s *GraphService) BuildGraph(ctx context.Context) (*domain.KnowledgeGraph, error) {
	logger.Section("Knowledge Graph Build")

	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	logger.Debug("Corpus: %d articles", len(articles))

	graph := domain.NewKnowledgeGraph()
	byTitle := make(map[string]string, len(articles))
	for i := range articles {
		a := &articles[i]
		graph.Nodes[a.ID] = &domain.GraphNode{ID: a.ID, Title: a.Title, Slug: a.Slug}
		byTitle[strings.ToLower(a.Title)] = a.ID
	}

	keywords := make([][]string, len(articles))
	for i := range articles {
		keywords[i] = s.keywordsFor(&articles[i])
	}

	for i := range articles {
		a := &articles[i]

		// Related edges: keyword similarity above the threshold,
		// best matches first, capped per node.
		related := s.relatedByKeywords(i, articles, keywords)
		if len(related) > s.maxConnections {
			related = related[:s.maxConnections]
		}
		for _, r := range related {
			graph.Connect(a.ID, r.ArticleID, domain.ConnectionRelated)
		}

		// Reference edges: explicit [[Title]] markers, resolved by
		// case-insensitive title match. Unresolved markers are
		// skipped; Connect drops self-edges and duplicates.
		for _, ref := range ExtractReferences(a.Content) {
			targetID, ok := byTitle[strings.ToLower(ref)]
			if !ok {
				logger.Debug("Unresolved reference %q in %s", ref, a.ID)
				continue
			}
			graph.Connect(a.ID, targetID, domain.ConnectionReference)
		}
	}

	logger.Info("Graph: %d nodes", len(graph.Nodes))
	return graph, nil
}

// Related returns articles similar to the given article, highest
// similarity first.
func (s *GraphService) Related(ctx context.Context, articleID string, limit int) ([]domain.RelatedArticle, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if limit <= 0 {
		limit = s.maxConnections
	}

	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	self := -1
	for i := range articles {
		if articles[i].ID == articleID {
			self = i
			break
		}
	}
	if self < 0 {
		return nil, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
	}

	keywords := make([][]string, len(articles))
	for i := range articles {
		keywords[i] = s.keywordsFor(&articles[i])
	}

	related := s.relatedByKeywords(self, articles, keywords)
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// Backlinks returns every article whose content references the given
// title, independent of graph structure.
func (s *GraphService) Backlinks(ctx context.Context, title string) ([]domain.BackLink, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	want := strings.ToLower(title)
	var backlinks []domain.BackLink
	for i := range articles {
		a := &articles[i]
		for _, ref := range ExtractReferences(a.Content) {
			if strings.ToLower(ref) == want {
				backlinks = append(backlinks, domain.BackLink{
					ArticleID: a.ID,
					Title:     a.Title,
					Slug:      a.Slug,
				})
				break
			}
		}
	}
	return backlinks, nil
}

// Recommendations walks the graph breadth-first from an article and
// returns up to limit reachable nodes, excluding the start.
func (s *GraphService) Recommendations(ctx context.Context, articleID string, limit int) ([]*domain.GraphNode, error) {
	graph, err := s.BuildGraph(ctx)
	if err != nil {
		return nil, err
	}
	return Recommend(graph, articleID, limit), nil
}

// Recommend traverses the graph breadth-first from startID following
// edges of either type, collecting up to limit distinct nodes. The
// start node is never included. Traversal stops once the reachable
// set is exhausted, so articles in disconnected components are never
// reported.
func Recommend(graph *domain.KnowledgeGraph, startID string, limit int) []*domain.GraphNode {
	if limit <= 0 {
		limit = DefaultRecommendations
	}
	if graph.Node(startID) == nil {
		return nil
	}

	visited := map[string]bool{startID: true}
	queue := []string{startID}
	var out []*domain.GraphNode

	for len(queue) > 0 && len(out) < limit {
		id := queue[0]
		queue = queue[1:]

		for _, c := range graph.Node(id).Connections {
			if visited[c.TargetID] {
				continue
			}
			visited[c.TargetID] = true

			target := graph.Node(c.TargetID)
			if target == nil {
				continue
			}
			out = append(out, target)
			if len(out) >= limit {
				break
			}
			queue = append(queue, c.TargetID)
		}
	}
	return out
}

// ExtractReferences returns the [[Title]] markers in content, in
// order of appearance, with surrounding whitespace trimmed.
func ExtractReferences(content string) []string {
	matches := referencePattern.FindAllStringSubmatch(content, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if ref := strings.TrimSpace(m[1]); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// relatedByKeywords scores every other article against articles[self]
// and returns those above the threshold, best first. The sort is
// stable so equal scores keep corpus order.
func (s *GraphService) relatedByKeywords(self int, articles []domain.Article, keywords [][]string) []domain.RelatedArticle {
	var related []domain.RelatedArticle
	for i := range articles {
		if i == self {
			continue
		}
		score := analysis.Jaccard(keywords[self], keywords[i])
		if score > s.similarityThreshold {
			related = append(related, domain.RelatedArticle{
				ArticleID: articles[i].ID,
				Score:     score,
			})
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Score > related[j].Score
	})
	return related
}

// keywordsFor merges content-extracted keywords with any
// caller-supplied tags on the article.
func (s *GraphService) keywordsFor(a *domain.Article) []string {
	kw := s.analyzer.Keywords(a.Content, analysis.DefaultMaxKeywords)
	if len(a.Keywords) == 0 {
		return kw
	}

	seen := make(map[string]struct{}, len(kw))
	for _, k := range kw {
		seen[k] = struct{}{}
	}
	for _, k := range a.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kw = append(kw, k)
	}
	return kw
}
