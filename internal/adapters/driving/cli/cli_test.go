package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wikidex/wikidex-cli/internal/adapters/driven/storage/memory"
	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/services"
	"github.com/wikidex/wikidex-cli/internal/postprocessors"
	"github.com/wikidex/wikidex-cli/internal/postprocessors/chunker"
)

// setupTestServices wires real services over an in-memory store seeded
// with a small corpus, so commands run without touching disk.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewArticleStore()
	ctx := context.Background()
	seed := []domain.Article{
		{
			ID:    "a1",
			Slug:  "gravity",
			Title: "Gravity",
			Content: "# Gravity\nGravity is the attraction between masses. " +
				"Newton described gravity with a universal force law. " +
				"See [[General Relativity]] for the modern treatment. " +
				strings.Repeat("Objects accelerate towards larger masses under gravity every single day. ", 8),
			Keywords: []string{"gravity", "force", "mass"},
		},
		{
			ID:       "a2",
			Slug:     "general-relativity",
			Title:    "General Relativity",
			Content: "Gravity curves spacetime. Masses tell spacetime how to curve " +
				"and objects move under gravity.",
			Keywords: []string{"gravity", "spacetime", "geometry"},
		},
	}
	for i := range seed {
		require.NoError(t, store.Save(ctx, &seed[i]))
	}

	analyzer := analysis.NewAnalyzer()
	pipeline := postprocessors.NewPipeline(chunker.New(chunker.WithChunkSize(200), chunker.WithOverlap(20)))

	articleStore = store
	chunkCache = memory.NewChunkIndex()
	chunkPipeline = pipeline
	analyzerService = analyzer

	retrieval := services.NewRetrievalService(store, pipeline)
	retrieval.SetChunkIndex(chunkCache)
	retrievalService = retrieval
	graphService = services.NewGraphService(store, analyzer)
	answerService = services.NewAnswerService(store, analyzer)

	return func() {
		articleStore = nil
		chunkCache = nil
		chunkPipeline = nil
		analyzerService = nil
		retrievalService = nil
		graphService = nil
		answerService = nil
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
