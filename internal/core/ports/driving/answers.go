package driving

import (
	"context"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// AnswerService extracts citation-sized answer blocks and
// answer-first summaries from article content.
type AnswerService interface {
	// Answers segments an article's content into 40-60 word
	// self-contained answer blocks under the given heading.
	Answers(ctx context.Context, articleID string) ([]domain.AtomicAnswer, error)

	// Summary returns an answer-first summary of the article: whole
	// sentences accumulated up to roughly targetWords.
	Summary(ctx context.Context, articleID string, targetWords int) (string, error)
}
