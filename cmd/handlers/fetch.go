package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/fetch"
)

// NewFetchCmd creates the fetch command
func NewFetchCmd() *cobra.Command {
	var (
		maxWords int
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [url]",
		Short: "Fetch a web page and extract its text",
		Long: `Fetch a URL and extract its readable text.

Navigation, scripts and other boilerplate are stripped; what remains is
the page's main text, ready to feed into 'suggest' or 'quotes'.

Examples:
  # Fetch an article
  meme-mcp fetch https://example.com/blog/post

  # Machine-readable output, capped at 500 words
  meme-mcp fetch --json --max-words 500 https://example.com/blog/post`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args[0], maxWords, jsonOut)
		},
	}

	cmd.Flags().IntVar(&maxWords, "max-words", 0, "Maximum words to keep (default from config: 8000)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the extract as JSON")

	return cmd
}

func runFetch(ctx context.Context, rawURL string, maxWords int, jsonOut bool) error {
	cfg := config.Get()
	if maxWords <= 0 {
		maxWords = cfg.Fetch.MaxWords
	}

	fetcher := fetch.NewFetcher(cfg.Fetch.TimeoutDuration(), maxWords)

	extract, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	if jsonOut {
		return printJSON(extract)
	}

	fmt.Printf("📄 %s\n", successColor(extract.Title))
	fmt.Printf("   %s\n", extract.URL)
	fmt.Printf("   %d words", extract.WordCount)
	if extract.Truncated {
		fmt.Printf(" %s", warnColor("(truncated)"))
	}
	fmt.Println()
	fmt.Println()
	fmt.Println(extract.Text)

	return nil
}
