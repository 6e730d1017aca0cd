// Package chunker provides a sentence-respecting text chunking processor.
package chunker

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1024

// DefaultOverlap is the default number of overlapping characters
// shared between consecutive chunks.
const DefaultOverlap = 128

// Processor splits article content into overlapping chunks bounded by
// a character budget. Sentences are never split: a chunk grows by
// whole sentences, and a single sentence longer than the chunk size
// is emitted as its own oversized chunk. Semantic boundaries win over
// strict size limits.
// It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
// An overlap that reaches the chunk size would stop the window from
// advancing, so it is clamped to a quarter of the chunk size.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the article content into chunks.
// Input chunks are ignored; this processor creates new chunks from
// article content.
func (p *Processor) Process(_ context.Context, article *domain.Article, _ []domain.Chunk) ([]domain.Chunk, error) {
	if article == nil {
		return nil, domain.ErrInvalidInput
	}
	return p.Chunk(article), nil
}

// Chunk splits an article into sentence-respecting chunks. Each chunk
// records its absolute start and end offset into the original
// content; the buffer is always an exact substring of the content, so
// consecutive chunk windows reconstruct the article with the overlap
// de-duplicated. Empty content produces zero chunks.
func (p *Processor) Chunk(article *domain.Article) []domain.Chunk {
	segments := analysis.SplitSegments(article.Content)
	if len(segments) == 0 {
		return nil
	}

	var chunks []domain.Chunk
	var buffer string
	startChar := 0
	section := ""

	for _, seg := range segments {
		if h, ok := headingText(seg); ok {
			section = h
		}

		if buffer != "" && len(buffer)+len(seg) > p.chunkSize {
			chunks = append(chunks, p.newChunk(article, len(chunks), buffer, startChar, section))

			// Seed the next buffer with the tail of the emitted one.
			overlap := tail(buffer, p.overlap)
			startChar += len(buffer) - len(overlap)
			buffer = overlap + seg
			continue
		}

		buffer += seg
	}

	if buffer != "" {
		chunks = append(chunks, p.newChunk(article, len(chunks), buffer, startChar, section))
	}

	return chunks
}

func (p *Processor) newChunk(article *domain.Article, index int, content string, startChar int, section string) domain.Chunk {
	return domain.Chunk{
		ID:        uuid.New().String(),
		ArticleID: article.ID,
		Index:     index,
		Content:   content,
		Metadata: domain.ChunkMetadata{
			Title:      article.Title,
			Section:    section,
			TokenCount: analysis.EstimateTokens(content).Approximate,
			StartChar:  startChar,
			EndChar:    startChar + len(content),
		},
	}
}

// tail returns the last n bytes of s, extended to a rune boundary so
// the overlap never starts mid-rune.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	i := len(s) - n
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return s[i:]
}

// headingText reports whether a segment is a markdown-style heading
// line and returns its text.
func headingText(seg string) (string, bool) {
	t := strings.TrimSpace(seg)
	if !strings.HasPrefix(t, "#") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimLeft(t, "#")), true
}
