package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	chunksLimit int
	chunksJSON  bool
)

var chunksCmd = &cobra.Command{
	Use:   "chunks [article]",
	Short: "Show the chunks of one article",
	Long: `Splits an article into its stored chunks and prints them in order.
The article may be given by slug or by ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runChunks,
}

func init() {
	chunksCmd.Flags().IntVarP(&chunksLimit, "limit", "n", 0, "maximum number of chunks (0 = all)")
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "output chunks as JSON")
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	ctx := context.Background()
	article, err := resolveArticle(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving article: %w", err)
	}

	chunks, err := retrievalService.ArticleChunks(ctx, article.ID, chunksLimit)
	if err != nil {
		return fmt.Errorf("chunking failed: %w", err)
	}

	if chunksJSON {
		return outputJSON(cmd, map[string]any{
			"articleId": article.ID,
			"chunks":    chunks,
		})
	}

	cmd.Printf("%s (%d chunks)\n\n", article.Title, len(chunks))
	for i := range chunks {
		chunk := &chunks[i]
		cmd.Printf("  [%d] chars %d-%d, ~%d tokens", chunk.Index,
			chunk.Metadata.StartChar, chunk.Metadata.EndChar, chunk.Metadata.TokenCount)
		if chunk.Metadata.Section != "" {
			cmd.Printf(", section %q", chunk.Metadata.Section)
		}
		cmd.Println()
	}
	return nil
}
