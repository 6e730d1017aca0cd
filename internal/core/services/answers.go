package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driving"
	"github.com/wikidex/wikidex-cli/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// DefaultSummaryWords is the summary target when the caller does not
// ask for a specific length.
const DefaultSummaryWords = 50

// summaryGuardBand is how far past the target a summary may run to
// finish its last whole sentence.
const summaryGuardBand = 10

// AnswerService extracts citation-sized answer blocks and
// answer-first summaries from stored articles.
type AnswerService struct {
	store    driven.ArticleStore
	analyzer driven.TextAnalyzer
}

// NewAnswerService creates a new answer service.
func NewAnswerService(store driven.ArticleStore, analyzer driven.TextAnalyzer) *AnswerService {
	return &AnswerService{
		store:    store,
		analyzer: analyzer,
	}
}

// Answers segments an article's content into 40-60 word answer
// blocks under the article's title.
func (s *AnswerService) Answers(ctx context.Context, articleID string) ([]domain.AtomicAnswer, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	article, err := s.store.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", articleID, err)
	}

	answers := ExtractAnswers(article.Content, article.Title, s.analyzer)
	logger.Debug("Extracted %d answers from %s", len(answers), articleID)
	return answers, nil
}

// Summary returns an answer-first summary of the article.
func (s *AnswerService) Summary(ctx context.Context, articleID string, targetWords int) (string, error) {
	if s.store == nil {
		return "", domain.ErrStoreUnavailable
	}

	article, err := s.store.Get(ctx, articleID)
	if err != nil {
		return "", fmt.Errorf("get article %s: %w", articleID, err)
	}

	return AnswerFirstSummary(article.Content, targetWords), nil
}

// ExtractAnswers segments content into self-contained answer blocks
// of 40-60 words. Sentences accumulate into a block until the next
// one would push it past 60 words; a block is emitted only when its
// word count lands inside the band, so fragments too short or long to
// be citation-worthy are silently dropped. Short input may yield zero
// answers.
func ExtractAnswers(content, heading string, analyzer driven.TextAnalyzer) []domain.AtomicAnswer {
	sentences := analysis.Sentences(content)
	if len(sentences) == 0 {
		return nil
	}

	slug := domain.Slugify(heading)
	var answers []domain.AtomicAnswer
	var block []string
	words := 0

	emit := func() {
		if words < domain.MinAnswerWords || words > domain.MaxAnswerWords {
			return
		}
		text := strings.Join(block, " ")
		answers = append(answers, domain.AtomicAnswer{
			ID:            fmt.Sprintf("%s-%d", slug, len(answers)),
			Heading:       heading,
			Answer:        text,
			RelatedTopics: analyzer.Entities(text),
			Confidence:    domain.AnswerConfidence,
		})
	}

	for _, sentence := range sentences {
		w := len(strings.Fields(sentence))
		if words > 0 && words+w > domain.MaxAnswerWords {
			emit()
			block = block[:0]
			words = 0
		}
		block = append(block, sentence)
		words += w
	}
	emit()

	return answers
}

// AnswerFirstSummary accumulates whole sentences until the running
// word count would exceed targetWords plus a small guard band. The
// summary never starts or ends with a partial sentence.
func AnswerFirstSummary(content string, targetWords int) string {
	if targetWords <= 0 {
		targetWords = DefaultSummaryWords
	}

	var summary []string
	words := 0
	for _, sentence := range analysis.Sentences(content) {
		w := len(strings.Fields(sentence))
		if words+w > targetWords+summaryGuardBand {
			break
		}
		summary = append(summary, sentence)
		words += w
	}
	return strings.Join(summary, " ")
}
