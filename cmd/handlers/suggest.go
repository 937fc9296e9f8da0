package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/analysis"
	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/suggest"
)

// NewSuggestCmd creates the suggest command
func NewSuggestCmd() *cobra.Command {
	var (
		limit   int
		jsonOut bool
		analyze bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [content...]",
		Short: "Suggest meme templates for a piece of content",
		Long: `Analyze content and rank templates by how well they fit it.

The content is scanned for signals such as surprise, contrast between
a past and a present state, rhetorical questions and negation. Templates
whose shape matches those signals are ranked highest, each with a
confidence level and a human-readable reason.

Examples:
  # Suggest templates for a sentence
  meme-mcp suggest "I used to use manual deployments, but now I use a CI/CD pipeline."

  # Show the detected signals alongside the suggestions
  meme-mcp suggest --analyze "Is this a feature? No, it's clearly a bug."

  # Machine-readable output
  meme-mcp suggest --json "It worked on my machine."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(args, limit, jsonOut, analyze)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of suggestions (default from config: 5)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output suggestions as JSON")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Also print the detected content signals")

	return cmd
}

func runSuggest(args []string, limit int, jsonOut, analyze bool) error {
	cfg := config.Get()
	if limit <= 0 {
		limit = cfg.Suggest.DefaultLimit
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}
	analyzer := analysis.NewAnalyzer()
	suggester := suggest.NewSuggester(cat, analyzer)

	content := strings.Join(args, " ")
	suggestions := suggester.Suggest(content, limit)

	if jsonOut {
		out := map[string]any{"suggestions": suggestions}
		if analyze {
			out["signals"] = analyzer.Analyze(content)
		}
		return printJSON(out)
	}

	if analyze {
		sig := analyzer.Analyze(content)
		fmt.Printf("📊 Detected signals: %s\n\n", strings.Join(sig.Active(), ", "))
	}

	if len(suggestions) == 0 {
		fmt.Println(warnColor("No template stood out for this content."))
		return nil
	}

	fmt.Printf("✨ Top %d template suggestions:\n\n", len(suggestions))

	for i, s := range suggestions {
		fmt.Printf("[%d] %s (%s) %s confidence, %s\n",
			i+1, successColor(s.DisplayName), s.TemplateID,
			confidenceColored(s.Confidence), infoColor(fmt.Sprintf("score %.1f", s.Score)))
		fmt.Printf("    %s\n", s.Reason)
		fmt.Printf("    slots: %d, example: %s\n", s.SlotCount, strings.Join(s.ExampleText, " / "))
		fmt.Println()
	}

	fmt.Println("💡 Use 'meme-mcp generate <template-id> <text>...' to render the winner")

	return nil
}

func confidenceColored(confidence string) string {
	switch confidence {
	case "high":
		return successColor(confidence)
	case "medium":
		return warnColor(confidence)
	default:
		return errorColor(confidence)
	}
}
