package chunker

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

func testArticle(content string) *domain.Article {
	return &domain.Article{
		ID:      "art1",
		Title:   "Test Article",
		Slug:    "test-article",
		Content: content,
	}
}

// buildProse generates n short sentences with natural breaks.
func buildProse(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("This sentence provides filler words for chunk boundary testing purposes. ")
	}
	return strings.TrimSuffix(sb.String(), " ")
}

func TestProcessor_Chunk_EmptyContent(t *testing.T) {
	p := New()

	assert.Empty(t, p.Chunk(testArticle("")))
}

func TestProcessor_Chunk_SingleSmallChunk(t *testing.T) {
	p := New()
	content := "One short sentence. Another short sentence."

	chunks := p.Chunk(testArticle(content))

	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0].Content)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 0, chunks[0].Metadata.StartChar)
	assert.Equal(t, len(content), chunks[0].Metadata.EndChar)
}

func TestProcessor_Chunk_IndexesAreSequential(t *testing.T) {
	p := New(WithChunkSize(200), WithOverlap(40))

	chunks := p.Chunk(testArticle(buildProse(30)))

	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, "art1", c.ArticleID)
		assert.NotEmpty(t, c.ID)
	}
}

func TestProcessor_Chunk_WindowsAreExactSubstrings(t *testing.T) {
	p := New(WithChunkSize(200), WithOverlap(40))
	content := buildProse(30)

	chunks := p.Chunk(testArticle(content))

	for _, c := range chunks {
		assert.Equal(t, content[c.Metadata.StartChar:c.Metadata.EndChar], c.Content)
	}
}

func TestProcessor_Chunk_ReconstructsContent(t *testing.T) {
	p := New(WithChunkSize(200), WithOverlap(40))
	content := buildProse(30)

	chunks := p.Chunk(testArticle(content))

	require.NotEmpty(t, chunks)
	assert.Equal(t, 0, chunks[0].Metadata.StartChar)
	assert.Equal(t, len(content), chunks[len(chunks)-1].Metadata.EndChar)

	// Concatenating windows with the overlap de-duplicated must
	// reproduce the content exactly.
	var sb strings.Builder
	covered := 0
	for _, c := range chunks {
		require.LessOrEqual(t, c.Metadata.StartChar, covered, "windows must not leave gaps")
		sb.WriteString(c.Content[covered-c.Metadata.StartChar:])
		covered = c.Metadata.EndChar
	}
	assert.Equal(t, content, sb.String())
}

func TestProcessor_Chunk_StartCharMonotonic(t *testing.T) {
	p := New(WithChunkSize(150), WithOverlap(30))

	chunks := p.Chunk(testArticle(buildProse(40)))

	for i := 1; i < len(chunks); i++ {
		assert.GreaterOrEqual(t, chunks[i].Metadata.StartChar, chunks[i-1].Metadata.StartChar)
		assert.GreaterOrEqual(t, chunks[i].Metadata.EndChar, chunks[i-1].Metadata.EndChar)
	}
}

func TestProcessor_Chunk_OversizedSentenceKeptWhole(t *testing.T) {
	p := New(WithChunkSize(50), WithOverlap(10))
	long := "This single sentence is deliberately much longer than the configured chunk size and must never be split in the middle."
	content := "Short intro. " + long

	chunks := p.Chunk(testArticle(content))

	found := false
	for _, c := range chunks {
		if strings.Contains(c.Content, long) {
			found = true
		}
	}
	assert.True(t, found, "oversized sentence must be emitted whole")
}

func TestProcessor_Chunk_FiveHundredWords(t *testing.T) {
	// 500 words with natural sentence breaks, default budget.
	words := 0
	var sb strings.Builder
	for words < 500 {
		sb.WriteString("The encyclopedia records events with careful attention to verifiable sources. ")
		words += 10
	}
	content := strings.TrimSuffix(sb.String(), " ")
	p := New(WithChunkSize(1024), WithOverlap(128))

	chunks := p.Chunk(testArticle(content))

	require.NotEmpty(t, chunks)
	assert.Equal(t, len(content), chunks[len(chunks)-1].Metadata.EndChar)
}

func TestProcessor_Chunk_TokenCountPopulated(t *testing.T) {
	p := New()

	chunks := p.Chunk(testArticle("A sentence long enough to count tokens for."))

	require.Len(t, chunks, 1)
	assert.Greater(t, chunks[0].Metadata.TokenCount, 0)
	assert.Equal(t, "Test Article", chunks[0].Metadata.Title)
}

func TestProcessor_Chunk_SectionFromHeading(t *testing.T) {
	p := New(WithChunkSize(80), WithOverlap(10))
	content := "## Early Life\nBorn in a small town. Raised near the coast. Studied mathematics at the academy in the capital city."

	chunks := p.Chunk(testArticle(content))

	require.NotEmpty(t, chunks)
	assert.Equal(t, "Early Life", chunks[0].Metadata.Section)
}

func TestNew_ClampsOverlap(t *testing.T) {
	p := New(WithChunkSize(100), WithOverlap(100))

	assert.Equal(t, 25, p.overlap)
}

func TestNew_IgnoresInvalidOptions(t *testing.T) {
	p := New(WithChunkSize(0), WithOverlap(-5))

	assert.Equal(t, DefaultChunkSize, p.chunkSize)
	assert.Equal(t, DefaultOverlap, p.overlap)
}

func TestProcessor_Process_NilArticle(t *testing.T) {
	p := New()

	_, err := p.Process(context.Background(), nil, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProcessor_Process_CreatesChunks(t *testing.T) {
	p := New()

	chunks, err := p.Process(context.Background(), testArticle("Some content here. More content follows."), nil)

	require.NoError(t, err)
	assert.Len(t, chunks, 1)
}
