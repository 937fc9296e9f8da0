package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/memegen"
)

// NewTemplatesCmd creates the parent templates command with subcommands
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse the meme template catalog",
		Long: `Browse the built-in meme template catalog.

Subcommands:
  list       - List templates, optionally filtered by category
  info       - Show one template in detail
  categories - List template categories

Examples:
  # List every template
  meme-mcp templates list

  # List only the reaction templates
  meme-mcp templates list --category reactions

  # Show slot count, keywords and similar templates
  meme-mcp templates info drake

  # List categories with template counts
  meme-mcp templates categories`,
	}

	// Add subcommands
	cmd.AddCommand(NewTemplatesListCmd())
	cmd.AddCommand(NewTemplatesInfoCmd())
	cmd.AddCommand(NewTemplatesCategoriesCmd())

	return cmd
}

// NewTemplatesListCmd creates the list subcommand
func NewTemplatesListCmd() *cobra.Command {
	var (
		category string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates, optionally filtered by category",
		Long:  `List the templates in the catalog, all of them or one category's worth`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesList(category, jsonOut)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list templates in this category")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output templates as JSON")

	return cmd
}

// NewTemplatesInfoCmd creates the info subcommand
func NewTemplatesInfoCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info [template-id]",
		Short: "Show one template in detail",
		Long:  `Show a template's slots, keywords, category and similar templates`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesInfo(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the template as JSON")

	return cmd
}

// NewTemplatesCategoriesCmd creates the categories subcommand
func NewTemplatesCategoriesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List template categories",
		Long:  `List the fixed template categories and how many templates each holds`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesCategories(jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output categories as JSON")

	return cmd
}

func runTemplatesList(category string, jsonOut bool) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	var ids []string
	if category == "" {
		ids = cat.SortedIDs()
	} else {
		c, ok := cat.Category(catalog.CategoryID(category))
		if !ok {
			var valid []string
			for _, cc := range cat.Categories() {
				valid = append(valid, string(cc.ID))
			}
			return fmt.Errorf("unknown category %q, valid categories: %s", category, strings.Join(valid, ", "))
		}
		ids = c.TemplateIDs
	}

	if jsonOut {
		type entry struct {
			catalog.Template
			Category   catalog.CategoryID `json:"category"`
			Popularity catalog.Popularity `json:"popularity"`
		}
		out := make([]entry, 0, len(ids))
		for _, id := range ids {
			tpl, _ := cat.Template(id)
			meta, _ := cat.Metadata(id)
			out = append(out, entry{Template: tpl, Category: meta.Category, Popularity: meta.Popularity})
		}
		return printJSON(map[string]any{"templates": out, "count": len(out)})
	}

	if category != "" {
		fmt.Printf("📋 Templates in category %s:\n\n", infoColor(category))
	} else {
		fmt.Printf("📋 All %d templates:\n\n", len(ids))
	}

	for _, id := range ids {
		tpl, _ := cat.Template(id)
		meta, _ := cat.Metadata(id)
		fmt.Printf("  %-24s %s (%d %s, %s, %s popularity)\n",
			successColor(id), tpl.DisplayName,
			tpl.SlotCount, plural(tpl.SlotCount, "slot"),
			meta.Category, meta.Popularity)
	}

	fmt.Println()
	fmt.Println("💡 Use 'meme-mcp templates info <template-id>' for details")

	return nil
}

func runTemplatesInfo(templateID string, jsonOut bool) error {
	cfg := config.Get()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	tpl, ok := cat.Template(templateID)
	if !ok {
		return fmt.Errorf("unknown template %q (see 'meme-mcp templates list')", templateID)
	}
	meta, ok := cat.Metadata(templateID)
	if !ok {
		return fmt.Errorf("template %q has no metadata", templateID)
	}

	exampleURL := memegen.RenderURL(cfg.Memegen.BaseURL, tpl.ID, tpl.ExampleText)

	if jsonOut {
		return printJSON(map[string]any{
			"template":    tpl,
			"metadata":    meta,
			"example_url": exampleURL,
		})
	}

	fmt.Printf("%s (%s)\n\n", successColor(tpl.DisplayName), tpl.ID)
	fmt.Printf("  Category:   %s\n", meta.Category)
	fmt.Printf("  Popularity: %s\n", meta.Popularity)
	fmt.Printf("  Slots:      %d\n", tpl.SlotCount)
	fmt.Printf("  Usage:      %s\n", meta.UsageDescription)
	fmt.Printf("  Keywords:   %s\n", strings.Join(meta.Keywords, ", "))
	if len(meta.SimilarTemplates) > 0 {
		fmt.Printf("  Similar:    %s\n", strings.Join(meta.SimilarTemplates, ", "))
	}
	fmt.Println()
	fmt.Printf("  Example text: %s\n", strings.Join(tpl.ExampleText, " / "))
	fmt.Printf("  Example URL:  %s\n", infoColor(exampleURL))

	return nil
}

func runTemplatesCategories(jsonOut bool) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	categories := cat.Categories()

	if jsonOut {
		type entry struct {
			catalog.Category
			TemplateCount int `json:"template_count"`
		}
		out := make([]entry, 0, len(categories))
		for _, c := range categories {
			out = append(out, entry{Category: c, TemplateCount: len(c.TemplateIDs)})
		}
		return printJSON(map[string]any{"categories": out, "count": len(out)})
	}

	fmt.Printf("📋 %d categories:\n\n", len(categories))

	for _, c := range categories {
		fmt.Printf("  %-18s %s (%d %s)\n",
			successColor(string(c.ID)), c.Description,
			len(c.TemplateIDs), plural(len(c.TemplateIDs), "template"))
	}

	fmt.Println()
	fmt.Println("💡 Use 'meme-mcp templates list --category <id>' to see a category's templates")

	return nil
}
