package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikidex/wikidex-cli/internal/adapters/driven/storage/memory"
	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// tenWordSentence has exactly ten words.
const tenWordSentence = "The observatory recorded unusual signals during the long winter night."

// prose returns n copies of a ten-word sentence.
func prose(n int) string {
	return strings.TrimSpace(strings.Repeat(tenWordSentence+" ", n))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func TestExtractAnswers_BlocksWithinBand(t *testing.T) {
	analyzer := analysis.NewAnalyzer()

	answers := ExtractAnswers(prose(13), "Signals", analyzer)

	// Six sentences fill a 60-word block; the 13th sentence is a
	// 10-word trailing fragment and is dropped.
	require.Len(t, answers, 2)
	for _, a := range answers {
		wc := wordCount(a.Answer)
		assert.GreaterOrEqual(t, wc, domain.MinAnswerWords)
		assert.LessOrEqual(t, wc, domain.MaxAnswerWords)
	}
}

func TestExtractAnswers_IDsAreSlugged(t *testing.T) {
	analyzer := analysis.NewAnalyzer()

	answers := ExtractAnswers(prose(12), "Getting Started", analyzer)

	require.Len(t, answers, 2)
	assert.Equal(t, "getting-started-0", answers[0].ID)
	assert.Equal(t, "getting-started-1", answers[1].ID)
	assert.Equal(t, "Getting Started", answers[0].Heading)
}

func TestExtractAnswers_ShortInputYieldsNothing(t *testing.T) {
	analyzer := analysis.NewAnalyzer()

	assert.Empty(t, ExtractAnswers("Too short to cite.", "Heading", analyzer))
	assert.Empty(t, ExtractAnswers("", "Heading", analyzer))
}

func TestExtractAnswers_TrailingFragmentInBandIsKept(t *testing.T) {
	analyzer := analysis.NewAnalyzer()

	// Ten sentences: one 60-word block, then a 40-word remainder
	// that lands inside the band.
	answers := ExtractAnswers(prose(10), "Heading", analyzer)

	require.Len(t, answers, 2)
	assert.Equal(t, 60, wordCount(answers[0].Answer))
	assert.Equal(t, 40, wordCount(answers[1].Answer))
}

func TestExtractAnswers_ConfidenceConstant(t *testing.T) {
	analyzer := analysis.NewAnalyzer()

	answers := ExtractAnswers(prose(6), "Heading", analyzer)

	require.NotEmpty(t, answers)
	assert.Equal(t, domain.AnswerConfidence, answers[0].Confidence)
}

func TestExtractAnswers_RelatedTopicsFromEntities(t *testing.T) {
	analyzer := analysis.NewAnalyzer()
	content := "Marie Curie pioneered research on radioactivity in her Paris laboratory. " + prose(5)

	answers := ExtractAnswers(content, "Radioactivity", analyzer)

	require.NotEmpty(t, answers)
	assert.Contains(t, answers[0].RelatedTopics, "Marie Curie")
}

func TestAnswerFirstSummary_WholeSentencesOnly(t *testing.T) {
	summary := AnswerFirstSummary(prose(10), 50)

	// Six sentences reach 60 words, exactly the 50+10 guard band;
	// the seventh would exceed it.
	assert.Equal(t, 60, wordCount(summary))
	assert.True(t, strings.HasSuffix(summary, "."))
}

func TestAnswerFirstSummary_ShortContent(t *testing.T) {
	content := "Only one sentence here."

	assert.Equal(t, content, AnswerFirstSummary(content, 50))
}

func TestAnswerFirstSummary_Empty(t *testing.T) {
	assert.Equal(t, "", AnswerFirstSummary("", 50))
}

func TestAnswerFirstSummary_DefaultTarget(t *testing.T) {
	summary := AnswerFirstSummary(prose(20), 0)

	assert.LessOrEqual(t, wordCount(summary), DefaultSummaryWords+summaryGuardBand)
	assert.Greater(t, wordCount(summary), 0)
}

func TestAnswerService_Answers(t *testing.T) {
	store := memory.NewArticleStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Article{
		ID: "a1", Title: "Signals", Content: prose(6),
	}))
	svc := NewAnswerService(store, analysis.NewAnalyzer())

	answers, err := svc.Answers(ctx, "a1")

	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "signals-0", answers[0].ID)
}

func TestAnswerService_Answers_NotFound(t *testing.T) {
	svc := NewAnswerService(memory.NewArticleStore(), analysis.NewAnalyzer())

	_, err := svc.Answers(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnswerService_Summary(t *testing.T) {
	store := memory.NewArticleStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Article{
		ID: "a1", Title: "Signals", Content: prose(10),
	}))
	svc := NewAnswerService(store, analysis.NewAnalyzer())

	summary, err := svc.Summary(ctx, "a1", 30)

	require.NoError(t, err)
	assert.LessOrEqual(t, wordCount(summary), 40)
	assert.Greater(t, wordCount(summary), 0)
}
