package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/search"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "search [keywords...]",
		Short: "Search meme templates by keyword",
		Long: `Search the template catalog by keyword.

Each keyword is matched against template names, keyword lists and usage
descriptions. Exact keyword matches score higher than partial ones, and
results are ordered by relevance.

Examples:
  # Find templates about surprise
  meme-mcp search surprised

  # Multi-word queries match each word independently
  meme-mcp search difficult choice

  # Machine-readable output
  meme-mcp search surprised --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args, limit, jsonOut)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results (default from config: 5)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")

	return cmd
}

func runSearch(args []string, limit int, jsonOut bool) error {
	cfg := config.Get()
	if limit <= 0 {
		limit = cfg.Search.DefaultLimit
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}
	idx := search.NewIndex(cat)

	query := strings.Join(args, " ")
	results := idx.Search(query)

	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	if jsonOut {
		return printJSON(map[string]any{
			"query":         query,
			"results":       results,
			"total_matches": total,
		})
	}

	fmt.Printf("🔍 Searching templates for: %q\n\n", query)

	if total == 0 {
		fmt.Println(warnColor("No templates matched."))
		fmt.Println("   Try broader keywords, e.g. 'choice', 'fail' or 'surprised'")
		return nil
	}

	for i, r := range results {
		fmt.Printf("[%d] %s (%s) %s\n", i+1, successColor(r.DisplayName), r.TemplateID, infoColor(fmt.Sprintf("score %.1f", r.Score)))
		if len(r.MatchedKeywords) > 0 {
			fmt.Printf("    matched: %s\n", strings.Join(r.MatchedKeywords, ", "))
		}
		fmt.Printf("    %s\n", r.UsageDescription)
		fmt.Println()
	}

	fmt.Printf("Showing %d of %d matches\n", len(results), total)
	fmt.Println("💡 Use 'meme-mcp templates info <template-id>' for slot counts and examples")

	return nil
}
