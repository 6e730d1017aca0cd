package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wikidex/wikidex-cli/internal/core/services"
)

var answersJSON bool

var answersCmd = &cobra.Command{
	Use:   "answers [article]",
	Short: "Extract citation-sized answers from an article",
	Long: `Segments an article into self-contained 40-60 word answer blocks
suitable for direct citation by answer engines.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnswers,
}

func init() {
	answersCmd.Flags().BoolVar(&answersJSON, "json", false, "output answers as JSON")
	rootCmd.AddCommand(answersCmd)
}

func runAnswers(cmd *cobra.Command, args []string) error {
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

	if answersJSON {
		return outputJSON(cmd, answers)
	}

	if len(answers) == 0 {
		cmd.Println("No answers extracted (content too short).")
		return nil
	}

	for _, answer := range answers {
		cmd.Printf("[%s] (%.2f)\n", answer.ID, answer.Confidence)
		cmd.Printf("  %s\n", answer.Answer)
		if len(answer.RelatedTopics) > 0 {
			cmd.Printf("  Topics: %s\n", strings.Join(answer.RelatedTopics, ", "))
		}
		cmd.Println()
	}
	return nil
}

var summaryWords int

var summaryCmd = &cobra.Command{
	Use:   "summary [article]",
	Short: "Generate an answer-first summary of an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVarP(&summaryWords, "words", "w", services.DefaultSummaryWords, "target summary length in words")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	ctx := context.Background()
	article, err := resolveArticle(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving article: %w", err)
	}

	summary, err := answerService.Summary(ctx, article.ID, summaryWords)
	if err != nil {
		return fmt.Errorf("generating summary: %w", err)
	}

	cmd.Println(summary)
	return nil
}
