package jsonld

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

func testArticle() *domain.Article {
	return &domain.Article{
		ID:        "a1",
		Slug:      "quantum-mechanics",
		Title:     "Quantum Mechanics",
		Content:   "body",
		Category:  "Physics",
		Keywords:  []string{"quantum", "physics"},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}
}

func TestArticle_GraphShape(t *testing.T) {
	b := NewBuilder("https://wikidex.example/", "WikiDex")
	answers := []domain.AtomicAnswer{
		{ID: "quantum-mechanics-0", Heading: "Quantum Mechanics", Answer: "Quantum mechanics describes matter at small scales.", Confidence: domain.AnswerConfidence},
	}

	doc := b.Article(testArticle(), "A short summary.", answers)

	assert.Equal(t, "https://schema.org", doc["@context"])
	graph, ok := doc["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, graph, 3)

	article := graph[0].(Document)
	assert.Equal(t, "Article", article["@type"])
	assert.Equal(t, "Quantum Mechanics", article["headline"])
	assert.Equal(t, "https://wikidex.example/wiki/quantum-mechanics", article["url"])
	assert.Equal(t, "A short summary.", article["description"])
	assert.Equal(t, "Physics", article["articleSection"])
	assert.Equal(t, "quantum, physics", article["keywords"])
	assert.Equal(t, "2026-01-02T03:04:05Z", article["datePublished"])

	crumbs := graph[1].(Document)
	assert.Equal(t, "BreadcrumbList", crumbs["@type"])
	items := crumbs["itemListElement"].([]any)
	require.Len(t, items, 3)
	assert.Equal(t, "WikiDex", items[0].(Document)["name"])
	assert.Equal(t, "Physics", items[1].(Document)["name"])
	assert.Equal(t, "https://wikidex.example/wiki/category/physics", items[1].(Document)["item"])
	assert.Equal(t, 3, items[2].(Document)["position"])

	faq := graph[2].(Document)
	assert.Equal(t, "FAQPage", faq["@type"])
	questions := faq["mainEntity"].([]any)
	require.Len(t, questions, 1)
	q := questions[0].(Document)
	assert.Equal(t, "Quantum Mechanics", q["name"])
	assert.Equal(t, "Quantum mechanics describes matter at small scales.",
		q["acceptedAnswer"].(Document)["text"])
}

func TestArticle_NoAnswersOmitsFAQ(t *testing.T) {
	b := NewBuilder("https://wikidex.example", "WikiDex")

	doc := b.Article(testArticle(), "", nil)

	graph := doc["@graph"].([]any)
	assert.Len(t, graph, 2)
	article := graph[0].(Document)
	_, hasDescription := article["description"]
	assert.False(t, hasDescription)
}

func TestArticle_NoCategorySkipsCrumb(t *testing.T) {
	b := NewBuilder("https://wikidex.example", "WikiDex")
	article := testArticle()
	article.Category = ""

	doc := b.Article(article, "", nil)

	crumbs := doc["@graph"].([]any)[1].(Document)
	items := crumbs["itemListElement"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Quantum Mechanics", items[1].(Document)["name"])
}

func TestDocument_MarshalIndent(t *testing.T) {
	b := NewBuilder("https://wikidex.example", "WikiDex")

	data, err := b.Article(testArticle(), "Summary.", nil).MarshalIndent()
	require.NoError(t, err)

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, "https://schema.org", roundTrip["@context"])
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "One.", firstSentence("One. Two."))
	assert.Equal(t, "No terminator", firstSentence("No terminator"))
}
