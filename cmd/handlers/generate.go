package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/memegen"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		outFile string
		urlOnly bool
	)

	cmd := &cobra.Command{
		Use:   "generate [template-id] [text...]",
		Short: "Render a meme image",
		Long: `Render a meme from a template and its text lines.

Each positional argument after the template ID fills one text slot, so
quote multi-word lines. The number of lines must match the template's
slot count; 'meme-mcp templates info <id>' shows it.

Examples:
  # Render the drake template (2 slots) and save the image
  meme-mcp generate drake "manual deployments" "CI/CD pipeline" -o meme.png

  # Just print the image URL without downloading anything
  meme-mcp generate drake "manual deployments" "CI/CD pipeline" --url-only`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], args[1:], outFile, urlOnly)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the image to this file (default: <template-id>.png)")
	cmd.Flags().BoolVar(&urlOnly, "url-only", false, "Print the image URL instead of downloading it")

	return cmd
}

func runGenerate(ctx context.Context, templateID string, lines []string, outFile string, urlOnly bool) error {
	cfg := config.Get()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	tpl, ok := cat.Template(templateID)
	if !ok {
		return fmt.Errorf("unknown template %q (see 'meme-mcp templates list')", templateID)
	}
	if len(lines) != tpl.SlotCount {
		return fmt.Errorf("template %q takes %d text lines, got %d", templateID, tpl.SlotCount, len(lines))
	}

	client := memegen.NewClient(cfg.Memegen.BaseURL, cfg.Memegen.TimeoutDuration(), cfg.Memegen.MaxConcurrent)

	if urlOnly {
		fmt.Println(client.URL(templateID, lines))
		return nil
	}

	fmt.Printf("🎨 Rendering %s...\n", infoColor(tpl.DisplayName))

	img, err := client.Render(ctx, templateID, lines)
	if err != nil {
		return fmt.Errorf("failed to render meme: %w", err)
	}

	if outFile == "" {
		outFile = templateID + ".png"
	}
	if err := os.WriteFile(outFile, img.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	fmt.Printf("%s Wrote %d bytes to %s\n", successColor("✓"), len(img.Data), outFile)
	fmt.Printf("   URL: %s\n", img.URL)

	return nil
}
