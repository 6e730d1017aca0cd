package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikidex/wikidex-cli/internal/core/services"
	"github.com/wikidex/wikidex-cli/internal/jsonld"
)

var (
	jsonldBaseURL  string
	jsonldSiteName string
)

var jsonldCmd = &cobra.Command{
	Use:   "jsonld [article]",
	Short: "Emit Schema.org JSON-LD for an article",
	Long: `Builds the structured-data document for an article: the Article
node with an answer-first description, a BreadcrumbList, and the
extracted atomic answers as an FAQPage.`,
	Args: cobra.ExactArgs(1),
	RunE: runJSONLD,
}

func init() {
	jsonldCmd.Flags().StringVar(&jsonldBaseURL, "base-url", "https://wikidex.local", "site base URL for generated links")
	jsonldCmd.Flags().StringVar(&jsonldSiteName, "site-name", "WikiDex", "site name for the breadcrumb root")
	rootCmd.AddCommand(jsonldCmd)
}

func runJSONLD(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	ctx := context.Background()
	article, err := resolveArticle(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving article: %w", err)
	}

	answers, err := answerService.Answers(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("extracting answers: %w", err)
	}
	summary, err := answerService.Summary(ctx, article.ID, services.DefaultSummaryWords)
	if err != nil {
		return fmt.Errorf("generating summary: %w", err)
	}

	doc := jsonld.NewBuilder(jsonldBaseURL, jsonldSiteName).Article(article, summary, answers)
	data, err := doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}

	cmd.Println(string(data))
	return nil
}
