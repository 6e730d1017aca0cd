package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/services"
)

var (
	queryLimit     int
	queryMaxTokens int
	queryJSON      bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Retrieve the best chunks for a query",
	Long: `Ranks every chunk in the corpus against the query and returns the
top matches within the requested token budget.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", services.DefaultTopK, "maximum number of chunks")
	queryCmd.Flags().IntVar(&queryMaxTokens, "max-tokens", 0, "token budget for the combined chunks (0 = unlimited)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	query := args[0]

	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	// Config supplies the default chunk count; an explicit flag wins.
	if !cmd.Flags().Changed("limit") && configStore != nil {
		if k := configStore.GetInt("retrieval.top_k"); k > 0 {
			queryLimit = k
		}
	}

	ctx := context.Background()
	opts := domain.RetrievalOptions{
		TopK:             queryLimit,
		MaxContextTokens: queryMaxTokens,
	}

	result, err := retrievalService.RetrieveContext(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if queryJSON {
		return outputJSON(cmd, result)
	}

	return outputQueryTable(cmd, query, result)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, query string, result *domain.RetrievalResult) error {
	if len(result.Chunks) == 0 {
		cmd.Println("No matching chunks found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range result.Chunks {
		chunk := &result.Chunks[i]

		label := chunk.Metadata.Title
		if chunk.Metadata.Section != "" {
			label = fmt.Sprintf("%s / %s", label, chunk.Metadata.Section)
		}

		cmd.Printf("  [%d] %s (%.2f, ~%d tokens)\n", i+1, label, chunk.Score, chunk.Metadata.TokenCount)
		for _, highlight := range services.Highlights(chunk.Content, query) {
			cmd.Printf("      %s\n", highlight)
		}
		cmd.Println()
	}

	meta := result.Metadata
	cmd.Printf("Chunks: %d  Tokens: ~%d", meta.TotalChunks, meta.TotalTokens)
	if meta.MaxContextTokens > 0 {
		cmd.Printf("  Budget: %d  Remaining: %d", meta.MaxContextTokens, meta.AvailableTokens)
	}
	cmd.Println()
	return nil
}
