package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/quotes"
)

// NewQuotesCmd creates the quotes command
func NewQuotesCmd() *cobra.Command {
	var (
		maxLength int
		limit     int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "quotes [content...]",
		Short: "Extract meme-worthy quotes from longer text",
		Long: `Pull short, punchy lines out of a longer piece of text.

Sentences are scored for meme potential: brevity, emotional words,
questions, contrast and position in the text all contribute. Long
sentences are trimmed to key fragments so every quote fits a meme
text slot.

Examples:
  # Extract quotes from a paragraph
  meme-mcp quotes "We shipped on Friday. Everything broke. Never again."

  # Keep quotes short enough for a tight template
  meme-mcp quotes --max-length 40 "..."

  # Machine-readable output
  meme-mcp quotes --json "..."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuotes(args, maxLength, limit, jsonOut)
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum quote length in characters (default from config: 100)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of quotes (default from config: 10)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output quotes as JSON")

	return cmd
}

func runQuotes(args []string, maxLength, limit int, jsonOut bool) error {
	cfg := config.Get()
	if maxLength <= 0 {
		maxLength = cfg.Quotes.DefaultMaxLength
	}
	if limit <= 0 {
		limit = cfg.Quotes.DefaultLimit
	}

	extractor := quotes.NewExtractor()
	content := strings.Join(args, " ")
	result := extractor.Extract(content, maxLength, limit)

	if jsonOut {
		return printJSON(result)
	}

	if len(result.Quotes) == 0 {
		fmt.Println(warnColor("No quotable lines found."))
		fmt.Println("   Try text with short sentences, questions or strong words")
		return nil
	}

	fmt.Printf("✨ Found %d %s:\n\n", len(result.Quotes), plural(len(result.Quotes), "quote"))

	for i, q := range result.Quotes {
		fmt.Printf("[%d] %s %s\n", i+1, successColor(fmt.Sprintf("%q", q.Text)), infoColor(fmt.Sprintf("score %.1f", q.Score)))
		fmt.Printf("    %s (%s)\n", q.Reason, q.Position)
		fmt.Println()
	}

	fmt.Printf("Analyzed %d sentences, %d characters\n", result.Analysis.SentenceCount, result.Analysis.ContentLength)

	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
