package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var articlesJSON bool

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List indexed articles",
	Args:  cobra.NoArgs,
	RunE:  runArticles,
}

func init() {
	articlesCmd.Flags().BoolVar(&articlesJSON, "json", false, "output articles as JSON")
	rootCmd.AddCommand(articlesCmd)
}

func runArticles(cmd *cobra.Command, _ []string) error {
	if articleStore == nil {
		return errors.New("article store not configured")
	}

	articles, err := articleStore.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing articles: %w", err)
	}

	if articlesJSON {
		return outputJSON(cmd, articles)
	}

	if len(articles) == 0 {
		cmd.Println("No articles indexed.")
		return nil
	}

	for i := range articles {
		article := &articles[i]
		cmd.Printf("  %s (%s)", article.Title, article.Slug)
		if article.Category != "" {
			cmd.Printf("  [%s]", article.Category)
		}
		cmd.Println()
	}
	return nil
}
