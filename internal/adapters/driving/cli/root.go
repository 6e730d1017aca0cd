// Package cli implements the wikidex command-line interface. Commands
// are thin adapters over the driving ports; wiring happens once in the
// root command's PersistentPreRunE so tests can inject mock services.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikidex/wikidex-cli/internal/adapters/driven/config/file"
	"github.com/wikidex/wikidex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driving"
	"github.com/wikidex/wikidex-cli/internal/core/services"
	"github.com/wikidex/wikidex-cli/internal/logger"
	"github.com/wikidex/wikidex-cli/internal/postprocessors"
)

var version = "dev"

var (
	verbose   bool
	dataDir   string
	configDir string
)

var (
	configStore      driven.ConfigStore
	articleStore     driven.ArticleStore
	chunkCache       driven.ChunkIndex
	retrievalService driving.RetrievalService
	graphService     driving.GraphService
	answerService    driving.AnswerService
	analyzerService  driven.TextAnalyzer
	chunkPipeline    driven.PostProcessorPipeline

	closeStore func() error
)

var rootCmd = &cobra.Command{
	Use:   "wikidex",
	Short: "Retrieval and knowledge-graph tooling for a markdown wiki",
	Long: `wikidex indexes a directory of markdown articles and exposes the
retrieval pipeline over it: token-budgeted chunk retrieval, a
similarity knowledge graph with [[Title]] references, citation-sized
atomic answers, and Schema.org JSON-LD output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "database directory (default ~/.wikidex/data)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.wikidex)")
}

// Execute runs the root command. v is the build version stamped by the
// main package.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	defer func() {
		if closeStore != nil {
			if err := closeStore(); err != nil {
				logger.Warn("closing store: %v", err)
			}
		}
	}()
	return rootCmd.Execute()
}

// initServices wires the real adapters into the service globals.
// Already-populated globals are left alone so tests can pre-install
// mocks.
func initServices() error {
	if articleStore != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	dir := dataDir
	if dir == "" {
		dir = cfg.GetString("data_dir")
	}
	store, err := sqlite.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	closeStore = store.Close
	articleStore = store.ArticleStore()
	chunkCache = store.ChunkIndex()
	logger.Debug("store ready at %s", store.Path())

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	chunkerCfg := map[string]any{}
	if size := cfg.GetInt("chunking.chunk_size"); size > 0 {
		chunkerCfg["chunk_size"] = size
	}
	if overlap := cfg.GetInt("chunking.overlap"); overlap > 0 {
		chunkerCfg["overlap"] = overlap
	}
	chunkProcessor, err := registry.Build("chunker", chunkerCfg)
	if err != nil {
		return fmt.Errorf("building chunker: %w", err)
	}
	chunkPipeline = postprocessors.NewPipeline(chunkProcessor)

	analyzer := analysis.NewAnalyzer()
	analyzerService = analyzer

	retrieval := services.NewRetrievalService(articleStore, chunkPipeline)
	retrieval.SetChunkIndex(chunkCache)
	retrievalService = retrieval

	graph := services.NewGraphService(articleStore, analyzer)
	if n := cfg.GetInt("graph.max_connections"); n > 0 {
		graph.SetMaxConnections(n)
	}
	if threshold := cfg.GetFloat("graph.similarity_threshold"); threshold > 0 {
		graph.SetSimilarityThreshold(threshold)
	}
	graphService = graph

	answerService = services.NewAnswerService(articleStore, analyzer)
	return nil
}

// resolveArticle accepts either a slug or an article ID.
func resolveArticle(ctx context.Context, ref string) (*domain.Article, error) {
	if articleStore == nil {
		return nil, errors.New("article store not configured")
	}

	article, err := articleStore.GetBySlug(ctx, ref)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return articleStore.Get(ctx, ref)
}
