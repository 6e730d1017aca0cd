// Package jsonld builds Schema.org structured-data documents for
// articles. The output embeds the answer-first summary as the article
// description and the atomic answers as an FAQPage, which is the shape
// answer engines consume for direct citation.
package jsonld

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// Document is a JSON-LD object. Keys follow Schema.org vocabulary.
type Document map[string]any

// MarshalIndent renders the document as pretty-printed JSON.
func (d Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Builder assembles JSON-LD documents for a site rooted at baseURL.
type Builder struct {
	baseURL  string
	siteName string
}

// NewBuilder creates a builder. baseURL should carry no trailing
// slash; siteName appears as the breadcrumb root.
func NewBuilder(baseURL, siteName string) *Builder {
	return &Builder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		siteName: siteName,
	}
}

// Article builds the full JSON-LD graph for an article: the Article
// node, its BreadcrumbList, and an FAQPage when answers are present.
func (b *Builder) Article(article *domain.Article, summary string, answers []domain.AtomicAnswer) Document {
	graph := []any{
		b.articleNode(article, summary),
		b.breadcrumbNode(article),
	}
	if len(answers) > 0 {
		graph = append(graph, b.faqNode(article, answers))
	}

	return Document{
		"@context": "https://schema.org",
		"@graph":   graph,
	}
}

func (b *Builder) articleNode(article *domain.Article, summary string) Document {
	url := b.articleURL(article)
	node := Document{
		"@type":    "Article",
		"@id":      url + "#article",
		"headline": article.Title,
		"url":      url,
		"mainEntityOfPage": Document{
			"@type": "WebPage",
			"@id":   url,
		},
	}
	if summary != "" {
		node["description"] = summary
	}
	if article.Category != "" {
		node["articleSection"] = article.Category
	}
	if len(article.Keywords) > 0 {
		node["keywords"] = strings.Join(article.Keywords, ", ")
	}
	if !article.CreatedAt.IsZero() {
		node["datePublished"] = article.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !article.UpdatedAt.IsZero() {
		node["dateModified"] = article.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return node
}

func (b *Builder) breadcrumbNode(article *domain.Article) Document {
	items := []any{
		breadcrumbItem(1, b.siteName, b.baseURL+"/"),
	}
	if article.Category != "" {
		items = append(items, breadcrumbItem(len(items)+1, article.Category,
			fmt.Sprintf("%s/wiki/category/%s", b.baseURL, domain.Slugify(article.Category))))
	}
	items = append(items, breadcrumbItem(len(items)+1, article.Title, b.articleURL(article)))

	return Document{
		"@type":           "BreadcrumbList",
		"@id":             b.articleURL(article) + "#breadcrumb",
		"itemListElement": items,
	}
}

// faqNode turns each atomic answer into a Question whose name is the
// answer's first sentence, the closest thing the extraction produces
// to a question the block resolves.
func (b *Builder) faqNode(article *domain.Article, answers []domain.AtomicAnswer) Document {
	questions := make([]any, 0, len(answers))
	for _, answer := range answers {
		name := answer.Heading
		if name == "" {
			name = firstSentence(answer.Answer)
		}
		questions = append(questions, Document{
			"@type": "Question",
			"@id":   fmt.Sprintf("%s#%s", b.articleURL(article), answer.ID),
			"name":  name,
			"acceptedAnswer": Document{
				"@type": "Answer",
				"text":  answer.Answer,
			},
		})
	}

	return Document{
		"@type":      "FAQPage",
		"@id":        b.articleURL(article) + "#faq",
		"mainEntity": questions,
	}
}

func (b *Builder) articleURL(article *domain.Article) string {
	return fmt.Sprintf("%s/wiki/%s", b.baseURL, article.Slug)
}

func breadcrumbItem(position int, name, url string) Document {
	return Document{
		"@type":    "ListItem",
		"position": position,
		"name":     name,
		"item":     url,
	}
}

func firstSentence(text string) string {
	for i, r := range text {
		switch r {
		case '.', '!', '?':
			return text[:i+1]
		}
	}
	return text
}
