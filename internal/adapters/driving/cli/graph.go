package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var graphJSON bool

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build and print the knowledge graph",
	Long: `Builds the full knowledge graph over the stored corpus: reference
edges from [[Title]] markers plus similarity edges from shared
keywords. Cost grows quadratically with the article count.`,
	Args: cobra.NoArgs,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().BoolVar(&graphJSON, "json", false, "output the graph as JSON")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, _ []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	graph, err := graphService.BuildGraph(context.Background())
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	if graphJSON {
		return outputJSON(cmd, graph)
	}

	ids := make([]string, 0, len(graph.Nodes))
	for id := range graph.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return graph.Nodes[ids[i]].Title < graph.Nodes[ids[j]].Title
	})

	edges := 0
	for _, id := range ids {
		node := graph.Nodes[id]
		edges += len(node.Connections)
		cmd.Printf("%s (%s)\n", node.Title, node.Slug)
		for _, conn := range node.Connections {
			target := graph.Nodes[conn.TargetID]
			name := conn.TargetID
			if target != nil {
				name = target.Title
			}
			cmd.Printf("  -> %s [%s]\n", name, conn.Type)
		}
	}
	cmd.Printf("\n%d nodes, %d edges\n", len(ids), edges)
	return nil
}

var relatedLimit int

var relatedCmd = &cobra.Command{
	Use:   "related [article]",
	Short: "List articles similar to an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

func init() {
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "n", 5, "maximum number of related articles")
	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	ctx := context.Background()
	article, err := resolveArticle(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving article: %w", err)
	}

	related, err := graphService.Related(ctx, article.ID, relatedLimit)
	if err != nil {
		return fmt.Errorf("finding related articles: %w", err)
	}

	if len(related) == 0 {
		cmd.Println("No related articles found.")
		return nil
	}

	cmd.Printf("Related to %s:\n", article.Title)
	for _, rel := range related {
		cmd.Printf("  %s (%.2f)\n", articleLabel(ctx, rel.ArticleID), rel.Score)
	}
	return nil
}

var backlinksCmd = &cobra.Command{
	Use:   "backlinks [title]",
	Short: "List articles that reference a title",
	Long: `Finds every article whose content carries a [[Title]] reference to
the given title. Matching is case-insensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runBacklinks,
}

func init() {
	rootCmd.AddCommand(backlinksCmd)
}

func runBacklinks(cmd *cobra.Command, args []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	backlinks, err := graphService.Backlinks(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("finding backlinks: %w", err)
	}

	if len(backlinks) == 0 {
		cmd.Println("No backlinks found.")
		return nil
	}

	for _, link := range backlinks {
		cmd.Printf("  %s (%s)\n", link.Title, link.Slug)
	}
	return nil
}

var recommendLimit int

var recommendCmd = &cobra.Command{
	Use:   "recommend [article]",
	Short: "Recommend articles reachable from an article",
	Long: `Walks the knowledge graph breadth-first from the given article and
returns the closest reachable articles, nearest first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 5, "maximum number of recommendations")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	ctx := context.Background()
	article, err := resolveArticle(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving article: %w", err)
	}

	nodes, err := graphService.Recommendations(ctx, article.ID, recommendLimit)
	if err != nil {
		return fmt.Errorf("finding recommendations: %w", err)
	}

	if len(nodes) == 0 {
		cmd.Println("No recommendations found.")
		return nil
	}

	cmd.Printf("Recommended after %s:\n", article.Title)
	for i, node := range nodes {
		cmd.Printf("  [%d] %s (%s)\n", i+1, node.Title, node.Slug)
	}
	return nil
}

// articleLabel renders an article reference as "Title (slug)", falling
// back to the raw ID when the article cannot be loaded.
func articleLabel(ctx context.Context, id string) string {
	if articleStore == nil {
		return id
	}
	article, err := articleStore.Get(ctx, id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%s (%s)", article.Title, article.Slug)
}
